// treewalk prints a small demonstration tree: its min, max, size and
// height, and the keys in all four traversal orders.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Horki/treers"
)

func main() {
	var structure string
	cmd := &cobra.Command{
		Use:   "treewalk",
		Short: "Walk a small demo tree in every traversal order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := demoTree(structure)
			if err != nil {
				return err
			}
			printTree(tree)
			return nil
		},
	}
	cmd.Flags().StringVar(&structure, "structure", "bst", "structure to build (bst|btree|rbtree)")

	if err := cmd.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func demoTree(structure string) (treers.Tree[string, int], error) {
	var tree treers.Tree[string, int]
	switch structure {
	case "bst":
		tree = treers.NewBST[string, int]()
		// shapes the unbalanced example tree
		//    c
		//   / \
		//  b   d
		// /
		// a
		for i, k := range []string{"c", "d", "b", "a"} {
			tree.Put(k, []int{3, 4, 2, 1}[i])
		}
	case "btree":
		tree = treers.NewBTree[string, int]()
		for i, k := range []string{"a", "b", "c", "d"} {
			tree.Put(k, []int{4, 1, 3, 5}[i])
		}
	case "rbtree":
		tree = treers.NewRBTree[string, int]()
		// ascending inserts: the worst case for the unbalanced tree,
		// handled by rotations and color flips here
		for i, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
			tree.Put(k, i+1)
		}
	default:
		return nil, fmt.Errorf("unknown structure %q", structure)
	}
	return tree, nil
}

func printTree(tree treers.Tree[string, int]) {
	minKey, _ := tree.Min()
	maxKey, _ := tree.Max()
	height, _ := tree.Height()
	fmt.Printf("size = %d\n", tree.Size())
	fmt.Printf("height = %d\n", height)
	fmt.Printf("min = %s\n", minKey)
	fmt.Printf("max = %s\n", maxKey)
	for _, order := range []treers.Order{treers.PreOrder, treers.InOrder, treers.PostOrder, treers.LevelOrder} {
		fmt.Printf("%s order traversal\n", order)
		for _, p := range treers.Traverse[string, int](tree, order) {
			fmt.Printf("%s, ", p.Key)
		}
		fmt.Println()
	}
}
