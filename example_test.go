package txtar_test

import (
	"context"
	"fmt"
	"os"

	"github.com/jmgilman/go/fs/billy"

	"github.com/jmgilman/go/txtar"
)

func ExampleParse() {
	a := txtar.ParseString(`Fixture for the greeting test.
-- hello.txt --
Hello, world!
-- dir/empty --
`)

	fmt.Printf("comment: %q\n", a.Comment)
	for _, f := range a.Files {
		fmt.Printf("%s: %q\n", f.Name, f.Data)
	}
	// Output:
	// comment: "Fixture for the greeting test.\n"
	// hello.txt: "Hello, world!\n"
	// dir/empty: ""
}

func ExampleFormat() {
	a := txtar.New("generated",
		txtar.NewFile("a.txt", "alpha"),
		txtar.NewFile("b/c.txt", "charlie\n"),
	)

	fmt.Print(string(txtar.Format(a)))
	// Output:
	// generated
	// -- a.txt --
	// alpha
	// -- b/c.txt --
	// charlie
}

func ExampleArchive_WriteTo() {
	a := txtar.New("", txtar.NewFile("note", "remember"))
	if _, err := a.WriteTo(os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// -- note --
	// remember
}

func ExampleArchive_Materialize() {
	a := txtar.ParseString("-- src/main.go --\npackage main\n-- README --\nhi\n")

	fsys := billy.NewMemory()
	if err := a.Materialize(context.Background(), "project", txtar.WithFS(fsys)); err != nil {
		fmt.Println(err)
		return
	}

	data, err := fsys.ReadFile("project/src/main.go")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(data))
	// Output:
	// package main
}

func ExampleArchive_Lookup() {
	a := txtar.ParseString("-- x --\nfirst\n-- x --\nsecond\n")

	f, ok := a.Lookup("x")
	fmt.Println(ok, string(f.Data))
	// Output:
	// true second
}
