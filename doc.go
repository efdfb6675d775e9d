// Package sparql2html renders SPARQL JSON query results as an HTML table.
//
// # Quick Start
//
// Create a converter and stream a results document through it:
//
//	conv, err := sparql2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := conv.Convert(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// The input is a SPARQL 1.1 results document in JSON form:
//
//	{"results": {"bindings": [
//	  {"homepage":    {"value": "http://a.com"},
//	   "name":        {"value": "Acme"},
//	   "description": {"value": "Wind farms"}}
//	]}}
//
// Each binding becomes one table row, in input order:
//
//	<tr><td><a href='http://a.com'>Acme</a></td><td>Wind farms</td></tr>
//
// # Conversion Pipeline
//
//  1. Read the whole input (bounded by WithMaxInputSize)
//  2. Parse JSON (ErrMalformedInput)
//  3. Check the results.bindings envelope (ErrSchemaMismatch)
//  4. Check every binding for the column variables (ErrMissingField)
//  5. Render the table and write it in a single call
//
// A failed conversion writes nothing.
//
// # Configuration
//
//	conv, err := sparql2html.NewConverter(
//	    sparql2html.WithColumns(sparql2html.Columns{
//	        Link: "freebaseURI", Text: "actorName", Description: "role",
//	    }),
//	    sparql2html.WithEscapeHTML(true),
//	)
//
// # Compatibility
//
// By default values are interpolated without HTML escaping, as existing
// fixtures expect. Enable WithEscapeHTML for untrusted endpoints. The header
// row is closed with "</tr>"; WithLegacyHeader emits the historical "</td>"
// for byte-compatible output.
package sparql2html
