// Package locales ships the embedded pattern-template tables that back
// template-driven identifier generation, most notably the US SSN templates.
//
// Tables are plain YAML files embedded into the binary, one file per locale,
// keyed by a BCP 47 tag at the top level:
//
//	en:
//	  ssn:
//	    valid: "[0-8]##-##-####"
//	    invalid:
//	      - "000-##-####"
//
// Load resolves a requested locale against the shipped tables using
// golang.org/x/text language matching, so "en-US" or "en-GB" resolve to the
// "en" table and unknown locales fall back to the default. Lookup keys are
// dotted paths into the YAML document.
//
// Templates use two wildcard tokens, expanded by Fill with draws from a
// digits.Stream: `#` becomes one random digit, and a bracketed range such
// as `[0-8]` becomes one digit from that inclusive range. All other
// characters are copied through untouched.
package locales
