// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree on stdout
func (tree *Tree[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - write an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Fprint(w io.Writer, printData bool) int {
	if Null == tree.root {
		return 0
	}
	return tree.printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree[K, V]) printTree(w io.Writer, h Handle, prefix string, br branch, printData bool) int {
	p := tree.at(h)
	rd := 0
	ld := 0
	if Null != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if Null != p.up {
		up = tree.at(p.up).key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %s/%d\n", p.key, p.value, up, p.colour, p.size)
	} else {
		fmt.Fprintf(w, "%v ^%v %s\n", p.key, up, p.colour)
	}
	if Null != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
