// Package btree implements an in-memory B-tree of configurable order.
//
// Keys are kept sorted across nodes of at most degree-1 keys. Insertion
// splits overflowed nodes on the way back up from the leaf; deletion repairs
// underflowed nodes by borrowing from a sibling or merging with one. All
// leaves stay at the same depth.
//
//	tree, err := btree.New[int](4)
//	if err != nil {
//		return err
//	}
//	for i := 0; i < 20; i++ {
//		tree.Insert(i)
//	}
//	tree.Erase(3)
//	fmt.Println(tree.Keys(), tree.Depth())
//
// Rebalancing steps can be observed with Tree.SetObserver, and a tree can be
// rendered for debugging with Visualizer.
package btree
