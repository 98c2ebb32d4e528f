package cpu

// Operation is a dispatch table entry.
type Operation struct {
	Name string                           // Instruction mnemonic.
	Args int                              // Minimum operand count.
	Exec func(*Cpu, []uint16) (err error) // Handler; nil is an illegal slot.
}

// unimplemented returns an operation that fails with ErrUnimplemented.
func unimplemented(name string) Operation {
	return Operation{
		Name: name,
		Exec: func(*Cpu, []uint16) error { return ErrUnimplemented(name) },
	}
}

var illegal = Operation{Name: "illegal"}

var table2OP = [32]Operation{
	illegal,
	{"je", 1, (*Cpu).opJe},
	{"jl", 2, (*Cpu).opJl},
	{"jg", 2, (*Cpu).opJg},
	{"dec_chk", 2, (*Cpu).opDecChk},
	{"inc_chk", 2, (*Cpu).opIncChk},
	{"jin", 2, (*Cpu).opJin},
	{"test", 2, (*Cpu).opTest},
	{"or", 2, (*Cpu).opOr},
	{"and", 2, (*Cpu).opAnd},
	{"test_attr", 2, (*Cpu).opTestAttr},
	{"set_attr", 2, (*Cpu).opSetAttr},
	{"clear_attr", 2, (*Cpu).opClearAttr},
	{"store", 2, (*Cpu).opStore},
	{"insert_obj", 2, (*Cpu).opInsertObj},
	{"loadw", 2, (*Cpu).opLoadw},
	{"loadb", 2, (*Cpu).opLoadb},
	{"get_prop", 2, (*Cpu).opGetProp},
	{"get_prop_addr", 2, (*Cpu).opGetPropAddr},
	{"get_next_prop", 2, (*Cpu).opGetNextProp},
	{"add", 2, (*Cpu).opAdd},
	{"sub", 2, (*Cpu).opSub},
	{"mul", 2, (*Cpu).opMul},
	{"div", 2, (*Cpu).opDiv},
	{"mod", 2, (*Cpu).opMod},
	illegal, illegal, illegal, illegal, illegal, illegal, illegal,
}

var table1OP = [16]Operation{
	{"jz", 1, (*Cpu).opJz},
	{"get_sibling", 1, (*Cpu).opGetSibling},
	{"get_child", 1, (*Cpu).opGetChild},
	{"get_parent", 1, (*Cpu).opGetParent},
	{"get_prop_len", 1, (*Cpu).opGetPropLen},
	{"inc", 1, (*Cpu).opInc},
	{"dec", 1, (*Cpu).opDec},
	{"print_addr", 1, (*Cpu).opPrintAddr},
	illegal,
	{"remove_obj", 1, (*Cpu).opRemoveObj},
	{"print_obj", 1, (*Cpu).opPrintObj},
	{"ret", 1, (*Cpu).opRet},
	{"jump", 1, (*Cpu).opJump},
	{"print_paddr", 1, (*Cpu).opPrintPaddr},
	{"load", 1, (*Cpu).opLoad},
	unimplemented("not"),
}

var table0OP = [16]Operation{
	{"rtrue", 0, (*Cpu).opRtrue},
	{"rfalse", 0, (*Cpu).opRfalse},
	{"print", 0, (*Cpu).opPrint},
	{"print_ret", 0, (*Cpu).opPrintRet},
	{"nop", 0, (*Cpu).opNop},
	unimplemented("save"),
	unimplemented("restore"),
	unimplemented("restart"),
	{"ret_popped", 0, (*Cpu).opRetPopped},
	unimplemented("pop"),
	{"quit", 0, (*Cpu).opQuit},
	{"new_line", 0, (*Cpu).opNewLine},
	unimplemented("show_status"),
	{"verify", 0, (*Cpu).opVerify},
	illegal, illegal,
}

var tableVAR = [32]Operation{
	{"call", 1, (*Cpu).opCall},
	{"storew", 3, (*Cpu).opStorew},
	{"storeb", 3, (*Cpu).opStoreb},
	{"put_prop", 3, (*Cpu).opPutProp},
	{"sread", 2, (*Cpu).opSread},
	{"print_char", 1, (*Cpu).opPrintChar},
	{"print_num", 1, (*Cpu).opPrintNum},
	{"random", 1, (*Cpu).opRandom},
	{"push", 1, (*Cpu).opPush},
	{"pull", 1, (*Cpu).opPull},
	unimplemented("split_window"),
	unimplemented("set_window"),
	illegal, illegal, illegal, illegal, illegal, illegal, illegal,
	unimplemented("output_stream"),
	unimplemented("input_stream"),
	unimplemented("sound_effect"),
	illegal, illegal, illegal, illegal, illegal, illegal, illegal, illegal, illegal, illegal,
}

// Lookup returns the dispatch table entry for an instruction.
func Lookup(form CodeForm, number uint8) (op Operation) {
	switch form {
	case FORM_2OP:
		op = table2OP[number&0x1f]
	case FORM_1OP:
		op = table1OP[number&0x0f]
	case FORM_0OP:
		op = table0OP[number&0x0f]
	case FORM_VAR:
		op = tableVAR[number&0x1f]
	}

	return
}
