package grammar

import "github.com/ghettovoice/abnf"

// RFC 7230 Section 3.2.6.
//
//	token = 1*tchar
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*"
//	      / "+" / "-" / "." / "^" / "_" / "`" / "|" / "~"
//	      / DIGIT / ALPHA
var (
	digit = abnf.Range("DIGIT", []byte{'0'}, []byte{'9'})
	alpha = abnf.Alt(
		"ALPHA",
		abnf.Range("%x41-5A", []byte{'A'}, []byte{'Z'}),
		abnf.Range("%x61-7A", []byte{'a'}, []byte{'z'}),
	)
	tchar = abnf.Alt(
		"tchar",
		char('!'), char('#'), char('$'), char('%'), char('&'), char('\''), char('*'),
		char('+'), char('-'), char('.'), char('^'), char('_'), char('`'), char('|'), char('~'),
		digit,
		alpha,
	)
	token = abnf.Repeat1Inf("token", tchar)
)

func char(c byte) abnf.Operator {
	return abnf.Range(string([]byte{'"', c, '"'}), []byte{c}, []byte{c})
}

// Token matches the RFC 7230 token rule at the start of s.
func Token(s []byte, ns *abnf.Nodes) error {
	return token(s, 0, ns) //errtrace:skip
}
