/*
Package locate resolves fonts by name for fontbake.

As font loading may be a time-consuming task, the resolving functions in
this package work in an async/await fashion by returning a promise.
Functions named

	Resolve…(…)

will return a promise type, which the client will call later to receive the
loaded font. The call to the promise-function will then block until loading
has completed.

Resolution tries, in order: previously registered fonts, the builtin Go
font families, locally installed fonts (via go-findfont, and via fontconfig
if an fc-list binary is configured), and finally a fallback font.
*/
package locate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontbake.resources'.
func tracer() tracing.Trace {
	return tracing.Select("fontbake.resources")
}
