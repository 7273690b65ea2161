// Утилита для осмотра снапшота сессии: печатает все записи key-value базы.
// Использование: snapshotdump <data-dir>
package main

import (
	"fmt"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: snapshotdump <data-dir>")
		return
	}

	db, err := leveldb.OpenFile(os.Args[1], nil)
	if err != nil {
		fmt.Printf("Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	iter := db.NewIterator(nil, nil)
	count := 0
	for iter.Next() {
		fmt.Printf("%-24s %s\n", string(iter.Key()), string(iter.Value()))
		count++
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		fmt.Printf("Iterator error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("-- %d records\n", count)
}
