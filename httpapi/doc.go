// Package httpapi exposes identifier generation as a JSON fixture service.
//
// The API is read-only and stateless: every response is produced on the fly
// by an idnumber.Generator. Routes:
//
//	GET /healthz                     liveness probe
//	GET /v1/schemes                  supported schemes and their variants
//	GET /v1/identifiers/{scheme}     generate identifiers for one scheme
//
// The identifiers endpoint accepts count, flavor, formatted, international,
// seed and locale query parameters. Supplying seed makes the response body
// reproducible, which lets test suites pin their fixtures to a URL.
//
// Responses share one envelope: data on success, an error object with a
// stable machine-readable code otherwise.
//
// Wire it up with NewAPI for the handler and NewServer for the listener:
//
//	api := httpapi.NewAPI(idnumber.New(), log, cfg)
//	srv := httpapi.NewServer(cfg, log)
//	err := srv.Run(ctx, api.Router())
package httpapi
