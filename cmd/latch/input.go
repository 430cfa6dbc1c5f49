package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/adamluzsi/latch/iterators"
	"github.com/adamluzsi/latch/pkg/errorkit"
)

type line struct {
	File string
	No   int
	Text string
}

// lines reads the given files one after the other as a single stream of lines.
// Files are opened lazily, when the previous one is exhausted.
func lines(stdin io.Reader, files []string) iterators.Iterator[line] {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var (
		index   int
		current iterators.Iterator[string]
		name    string
		no      int
	)
	closeCurrent := func() error {
		if current == nil {
			return nil
		}
		err := current.Close()
		current = nil
		return err
	}
	return iterators.Func[line](func() (line, bool, error) {
		for {
			if current == nil {
				if len(files) <= index {
					return line{}, false, nil
				}
				name = files[index]
				index++
				no = 0
				src, err := open(stdin, name)
				if err != nil {
					return line{}, false, err
				}
				current = src
			}
			if current.Next() {
				no++
				return line{File: name, No: no, Text: current.Value()}, true, nil
			}
			if err := errorkit.Merge(current.Err(), closeCurrent()); err != nil {
				return line{}, false, fmt.Errorf("reading %s: %w", name, err)
			}
		}
	}, iterators.OnClose(closeCurrent))
}

func open(stdin io.Reader, name string) (iterators.Iterator[string], error) {
	if name == "-" {
		return iterators.BufioScanner[string](bufio.NewScanner(stdin), nil), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return iterators.BufioScanner[string](bufio.NewScanner(f), f), nil
}
