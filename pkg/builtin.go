package vex

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

var printfFormats = map[DataType]string{
	DataInt:   "%s = %ld\n\x00",
	DataFloat: "%s = %g\n\x00",
}

// defineBuiltins declares printf and defines @dump, which prints every
// variable known to the builder.
func defineBuiltins(b *LLVMIRBuilder) *ir.Func {
	printf := declarePrintf(b.mod)
	return builtinDump(b, printf)
}

func declarePrintf(mod *ir.Module) *ir.Func {
	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	return printf
}

func builtinDump(b *LLVMIRBuilder, printf *ir.Func) *ir.Func {
	f := b.mod.NewFunc("dump", types.Void)
	block := f.NewBlock("")

	zero := constant.NewInt(types.I32, 0)
	formats := make(map[DataType]constant.Constant)
	for _, typ := range []DataType{DataInt, DataFloat} {
		format := constant.NewCharArrayFromString(printfFormats[typ])
		glob := b.mod.NewGlobalDef("._printf_fmt_"+string(typ), format)
		glob.Immutable = true

		formats[typ] = constant.NewGetElementPtr(types.NewArray(uint64(len(printfFormats[typ])), types.I8), glob, zero, zero)
	}

	for _, name := range b.values.Names() {
		g, typ, _ := b.values.Get(name)

		label := constant.NewCharArrayFromString(name + "\x00")
		labelGlob := b.mod.NewGlobalDef("._name_"+name, label)
		labelGlob.Immutable = true
		labelAddr := constant.NewGetElementPtr(types.NewArray(uint64(len(name)+1), types.I8), labelGlob, zero, zero)

		v := block.NewLoad(llvmType(typ), g)
		block.NewCall(printf, formats[typ], labelAddr, v)
	}

	block.NewRet(nil)
	return f
}
