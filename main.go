package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.creack.net/calc/eval"
	"go.creack.net/calc/parser"
	"go.creack.net/calc/render"
)

// run parses the input twice, once per traversal: each run is stateless and
// cheap, and the two walkers stay independent.
func run(input string, stdout io.Writer) error {
	prog, err := parser.Parse(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, render.New().Render(prog))

	prog, err = parser.Parse(input)
	if err != nil {
		return err
	}
	ev := eval.New()
	if err := ev.Run(prog); err != nil {
		return err
	}
	res, ok := ev.Result()
	if !ok {
		fmt.Fprintln(stdout, "no result")
		return nil
	}
	fmt.Fprintf(stdout, "%s = %v\n", eval.ResultName, res)
	return nil
}

func main() {
	var input string
	if len(os.Args) > 1 {
		input = strings.Join(os.Args[1:], " ")
	} else {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Fail: %s.", err)
		}
		input = string(buf)
	}

	if err := run(input, os.Stdout); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
