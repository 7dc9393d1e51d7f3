package main

import (
	"fmt"
	"log"

	"github.com/flatbit/go-flattrie/flattrie"
	"github.com/flatbit/go-flattrie/headerfilter"
)

func main() {
	trie, err := flattrie.Build(flattrie.HeaderAlphabet(),
		flattrie.KV{Key: "cf-ray", Val: 0},
		flattrie.KV{Key: "cf-connecting-ip", Val: 1},
		flattrie.KV{Key: "x-forwarded-for", Val: 2},
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("set: %d keys, %d arena nodes\n", trie.Len(), trie.NumNodes())

	headers := []string{"host", "cf-ray", "accept", "x-forwarded-for", "user-agent"}

	strip, keep := headerfilter.Partition(trie, headers, func(name string) string {
		return name
	})

	fmt.Println("strip:", strip)
	fmt.Println("keep: ", keep)

	f := headerfilter.New(trie)

	// hot reload: publish a new set, old readers are unaffected
	next, err := flattrie.Build(flattrie.HeaderAlphabet(),
		flattrie.KV{Key: "x-internal-tag", Val: 0},
	)
	if err != nil {
		log.Fatal(err)
	}
	f.Swap(next)

	fmt.Println("after reload:", f.Drop(headers))
}
