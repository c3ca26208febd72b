//go:build ignore
// +build ignore

// Generator for the amd64 group-compare routine. Run with:
//
//	go run asm.go -out ../internal/groupscan/groupscan_amd64.s -stubs ../internal/groupscan/groupscan_amd64_stub.go
//
// Never imported by the main module — this directory is its own go.mod so
// avo and its toolchain dependencies don't leak into the main dependency
// graph. The .s/.go output this would produce is not checked in; the
// contiguous-group backend ships as portable Go (see
// internal/groupscan/groupscan_wide.go) and documents why in DESIGN.md.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
)

// func main() {
// 	TEXT("Set1", NOSPLIT, "func(c uint8) ")
// 	x := Load(Param("c"), XMM())
// 	PUNPCKLBW(x, x)
// 	// 	PUNPCKLWD(x, x)
// 	PSHUFD(x, x, operand.Imm(0))
// 	// Store(x, ReturnIndex(0))
// 	RET()
// 	Generate()
// }

// WORKS!
// func main() {
// 	TEXT("groupMatch", NOSPLIT, "func(c uint8, group []byte) uint16")
// 	c := Load(Param("c"), GP32())
// 	ptr := Load(Param("group").Base(), GP64())
// 	x0, x1 := XMM(), XMM()
// 	result := GP32()
// 	PXOR(x1, x1)
// 	MOVD(c, x0)
// 	PSHUFB(x1, x0)
// 	PCMPEQB(operand.Mem{Base: ptr}, x0)
// 	PMOVMSKB(x0, result)
// 	Store(result, ReturnIndex(0))
// 	RET()
// 	Generate()
// }

func main() {
	TEXT("groupMatch", NOSPLIT, "func(c uint8, group []byte) (mask uint16, ok bool)")
	n := Load(Param("group").Len(), GP64())
	result := GP32()
	CMPQ(n, operand.Imm(16))
	JGE(operand.LabelRef("valid"))
	ok, err := ReturnIndex(1).Resolve()
	if err != nil {
		panic(err)
	}
	XORL(result, result)
	Store(result, ReturnIndex(0))
	MOVB(operand.Imm(0), ok.Addr)
	RET()

	Label("valid")
	c := Load(Param("c"), GP32())
	ptr := Load(Param("group").Base(), GP64())

	x0, x1, x2 := XMM(), XMM(), XMM()
	PXOR(x1, x1)
	MOVD(c, x0)
	PSHUFB(x1, x0)
	// MOVOU is how MOVDQU is spelled in Go asm.
	MOVOU(operand.Mem{Base: ptr}, x2)
	PCMPEQB(x2, x0)
	PMOVMSKB(x0, result)
	Store(result, ReturnIndex(0))
	MOVB(operand.Imm(1), ok.Addr)
	RET()
	Generate()
}

/*
TEXT("Add", NOSPLIT, "func(x, y uint64) uint64")
Doc("Add adds x and y.")
x := Load(Param("x"), GP64())
y := Load(Param("y"), GP64())
ADDQ(x, y)
Store(y, ReturnIndex(0))
RET()
Generate()
*/
