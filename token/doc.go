// Package token tokenizes konfig path strings.
//
// A path is a single line combining dotted identifier access with
// bracketed literal keys, for example
//
//	server.hosts[0]['bind address'][1:5:2]
//
// The tokenizer is strict: it accepts exactly the lexical forms of the
// path grammar and reports everything else with a positioned error.
package token
