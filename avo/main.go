// Command main is a scratch driver used while developing the avo script in
// asm.go — it exercises the intended groupMatch(c, group) contract against a
// plain Go reference so the generated assembly (once produced) can be sanity
// checked against it by eye. Not part of the main module's build.
package main

import (
	"fmt"
	"math/bits"
)

func main() {
	c := uint8(42)
	buffer := []byte{42, 0, 42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42, 0, 0}
	buffer = buffer[2:]
	fmt.Println(len(buffer))
	res, ok := groupMatchReference(c, buffer)
	if !ok {
		panic("short group")
	}
	fmt.Println(res)
	zeros := bits.TrailingZeros16(res)
	if zeros == 16 {
		fmt.Println("no match")
	} else {
		for {
			index := bits.TrailingZeros16(res)
			fmt.Println("match:", index)
			res &= ^(uint16(1) << index)
			if res == 0 {
				break
			}
		}
	}
}

// groupMatchReference is the scalar reference the generated assembly must agree with.
func groupMatchReference(c uint8, group []byte) (mask uint16, ok bool) {
	if len(group) < 16 {
		return 0, false
	}
	for i := 0; i < 16; i++ {
		if group[i] == c {
			mask |= 1 << i
		}
	}
	return mask, true
}
