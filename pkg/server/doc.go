// Package server exposes the csvgrid pipeline over HTTP.
//
// Routes:
//
//	GET  /                 form page with the rendered grid, updated as you type
//	GET  /api/grid         JSON model for ?values=&columns=&fill=
//	POST /api/grid         same, from a JSON body
//	GET  /render/{format}  any pipeline format (text, html, json, csv, md, dot, svg, png)
//	GET  /healthz          liveness check
//	GET  /version          build information
//
// A rejected input is answered with 422 Unprocessable Entity and the
// rejection message; malformed options (an unknown format, fill or border)
// are 400 Bad Request. Every response carries an X-Request-ID header.
package server
