// Command typereg inspects container configuration.
//
// It loads a config file (or TYPEREG_* variables plus an optional .env file),
// validates it, fills in defaults and prints the effective configuration.
//
//	typereg -config ./typereg.yaml
//	typereg -env ./prod.env -format json -out ./effective.json
//	typereg -config ./typereg.yaml -check
//
// With -check it also builds a container from the configuration, registers
// the grocery demo domain and resolves every store, which exercises the
// configured logger, ordering and telemetry end to end.
//
// Exit codes: 0 on success, 1 when loading, validation or output fails,
// 2 on usage errors.
package main
