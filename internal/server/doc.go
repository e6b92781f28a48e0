// Package server hosts the Fiber HTTP service, request middleware chain, and
// the guide registry glue that binds [[Guide]] config sections to registered
// guide modules. The binary bootstraps Fiber here, attaches logging and
// recover middlewares, injects the GuideRegistry built from config, and wires
// the cache-backed content handler into the /guides/:key route. Diagnostics
// surfaces live in the routes subpackage; keep exports narrow and accept
// explicit dependencies.
package server
