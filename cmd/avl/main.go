package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/g-m-twostay/go-avl/Trees"
)

func main() {
	app := cli.App{
		Name:  "avl",
		Usage: "interactive AVL tree shell",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "load",
				Usage: "seed the tree from a previous dump `FILE`",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

const help = `i|insert N          => Inserts N into the tree
u|update N          => Inserts N, overwriting an equal value
r|remove N          => Removes N from the tree
p|print [in|level|tree]  => Prints out the tree
min, max            => Smallest/largest value
pop, popleft        => Removes and prints the largest/smallest value
dump FILE           => Writes the tree to FILE
load FILE           => Replaces the tree with the contents of FILE
dot FILE            => Writes a Graphviz rendering to FILE
c|clear             => Clears the tree
q|quit|exit         => Quits`

func run(c *cli.Context) error {
	tree := Trees.New[int](uint32(0))
	if f := c.String("load"); f != "" {
		t, err := loadFile(f)
		if err != nil {
			return err
		}
		tree = t
	}

	fmt.Println("Interactive AVL Tree")
	fmt.Println()
	fmt.Println(help)
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("avl (%d)> ", tree.Size())
		if !in.Scan() {
			return in.Err()
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, arg := strings.ToLower(fields[0]), ""
		if len(fields) > 1 {
			arg = fields[1]
		}
		switch cmd {
		case "q", "quit", "exit":
			return nil
		case "i", "insert", "u", "update", "r", "remove":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Err: %q isn't a number\n", arg)
				continue
			}
			switch cmd[0] {
			case 'i':
				err = tree.Insert(n)
			case 'u':
				tree.Update(n)
			case 'r':
				err = tree.Remove(n)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, "Err:", err)
			}
		case "p", "print":
			switch arg {
			case "", "in":
				next := tree.InOrder()
				for v, ok := next(); ok; v, ok = next() {
					fmt.Print(v, " ")
				}
				fmt.Println()
			case "level":
				next := tree.LevelOrder()
				level := uint(0)
				for v, l, ok := next(); ok; v, l, ok = next() {
					if l != level {
						fmt.Println()
						level = l
					}
					fmt.Print(v, " ")
				}
				fmt.Println()
			case "tree":
				fmt.Print(tree)
			default:
				fmt.Fprintf(os.Stderr, "Err: invalid printing mode %q\n", arg)
			}
		case "min", "max", "pop", "popleft":
			var v int
			var err error
			switch cmd {
			case "min":
				v, err = tree.Minimum()
			case "max":
				v, err = tree.Maximum()
			case "pop":
				v, err = tree.Pop()
			case "popleft":
				v, err = tree.PopLeft()
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, "Err:", err)
			} else {
				fmt.Println(v)
			}
		case "dump":
			if err := dumpFile(tree, arg); err != nil {
				fmt.Fprintln(os.Stderr, "Err:", err)
			}
		case "load":
			t, err := loadFile(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Err:", err)
			} else {
				tree = t
			}
		case "dot":
			if err := dotFile(tree, arg); err != nil {
				fmt.Fprintln(os.Stderr, "Err:", err)
			}
		case "c", "clear":
			tree.Clear()
		default:
			fmt.Fprintln(os.Stderr, "Err: invalid command")
		}
	}
}

func dumpFile(tree *Trees.AVLTree[int, uint32], name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = tree.Dump(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadFile(name string) (*Trees.AVLTree[int, uint32], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Trees.Load[int, uint32](f)
}

func dotFile(tree *Trees.AVLTree[int, uint32], name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = tree.Dot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
