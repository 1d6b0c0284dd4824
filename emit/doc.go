/*
Package emit writes font tables as a source-level array literal.

The output is a single named, typed array, opened once, appended to once
per font table, and closed once:

	uint8_t fonts =
	{
		{
			"Go Mono",
			10,
			13,
			65,
			66,
			{
				{
					8,
					{
						0,0,0,0,0,0,0,0,
						…
					}
				},
				…
			}
		}
	};

Indentation is one tab per nesting level. The byte-exact layout is stable
across runs; downstream projects diff the generated files.

Package emit also contains the token sequencer which drives table building
from the command line's interleaved font-name/size tokens.
*/
package emit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontbake.emit'.
func tracer() tracing.Trace {
	return tracing.Select("fontbake.emit")
}
