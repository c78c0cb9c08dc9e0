package types

// DefaultEncoding is assumed when a stream's third header line is absent.
const DefaultEncoding = "UTF-8"

// FileHeader is the three-line preamble of a lexeme stream: the lexical
// domain that produced it, the source file that was lexed, and the
// source file's character encoding.
type FileHeader struct {
	Domain   string `json:"domain"`
	Filename string `json:"filename"`
	Encoding string `json:"encoding"`
}
