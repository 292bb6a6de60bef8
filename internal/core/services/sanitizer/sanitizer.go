/*
Package sanitizer strips command-chaining sequences from raw input lines.

This is a blunt guard against trivial chaining such as `ls; rm -rf ~`, not
shell-injection hardening: there is no escaping, so a literal semicolon or
ampersand can never reach a command, quoted or not.
*/
package sanitizer

import "strings"

// removed lists the sequences stripped from every line, in application order.
var removed = []string{";", "&", "||"}

// Sanitize returns input with every occurrence of `;`, `&` and `||` removed.
func Sanitize(input string) string {
	for _, seq := range removed {
		input = strings.ReplaceAll(input, seq, "")
	}
	return input
}
