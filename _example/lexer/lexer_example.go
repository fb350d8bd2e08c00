package main

import (
	"fmt"

	"github.com/xiam/sexpr/lexer"
)

func main() {
	input := `
		(define (fact n)
			(if (< n 2) 1
				(* n (fact (- n 1)))))
	`

	tokens := lexer.Tokenize([]byte(input))

	for i, tok := range tokens {
		pos := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d, offset: %d)\n\t-> %q\n\n", i, tt, pos.Line, pos.Col, pos.Offset, lexeme)
	}
}
