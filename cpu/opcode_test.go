package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	D := MODE_DIRECT
	I := MODE_IMMEDIATE
	R := MODE_RELATIVE

	table := [](struct {
		word  int64
		op    Op
		modes []Mode
		err   error
	}){
		{1, OP_ADD, []Mode{D, D, D}, nil},
		{1002, OP_MUL, []Mode{D, I, D}, nil},
		{21101, OP_ADD, []Mode{I, I, R}, nil},
		{3, OP_IN, []Mode{D}, nil},
		{203, OP_IN, []Mode{R}, nil},
		{104, OP_OUT, []Mode{I}, nil},
		{204, OP_OUT, []Mode{R}, nil},
		{1105, OP_JNZ, []Mode{I, I}, nil},
		{206, OP_JZ, []Mode{R, D}, nil},
		{1107, OP_LT, []Mode{I, I, D}, nil},
		{20208, OP_EQ, []Mode{R, D, R}, nil},
		{109, OP_ARB, []Mode{I}, nil},
		{99, OP_HALT, []Mode{}, nil},
		// Unused mode digits may be 0, 1 or 2.
		{10004, OP_OUT, []Mode{D}, nil},
		{22299, OP_HALT, []Mode{}, nil},
		// Only three mode digits are read.
		{3000001, OP_ADD, []Mode{D, D, D}, nil},
		{3004, 0, nil, ErrUnknownMode(3)},
		{30004, 0, nil, ErrUnknownMode(3)},
		{30099, 0, nil, ErrUnknownMode(3)},
		{90109, 0, nil, ErrUnknownMode(9)},
		{0, 0, nil, ErrUnknownOpcode(0)},
		{77, 0, nil, ErrUnknownOpcode(77)},
		{10, 0, nil, ErrUnknownOpcode(10)},
		{98, 0, nil, ErrUnknownOpcode(98)},
		{-1, 0, nil, ErrUnknownOpcode(-1)},
		{-99, 0, nil, ErrUnknownOpcode(-99)},
		{301, 0, nil, ErrUnknownMode(3)},
		{4001, 0, nil, ErrUnknownMode(4)},
		{90002, 0, nil, ErrUnknownMode(9)},
		{304, 0, nil, ErrUnknownMode(3)},
	}

	for _, entry := range table {
		inst, err := Decode(entry.word)
		if entry.err != nil {
			assert.Equal(entry.err, err, "%d", entry.word)
			assert.ErrorIs(err, ErrDecode, "%d", entry.word)
			continue
		}
		if !assert.NoError(err, "%d", entry.word) {
			continue
		}
		assert.Equal(entry.op, inst.Op, "%d", entry.word)
		assert.Equal(entry.op.Arity(), len(inst.Params), "%d", entry.word)
		modes := []Mode{}
		for _, param := range inst.Params {
			modes = append(modes, param.Mode)
			assert.Equal(int64(0), param.Value)
		}
		assert.Equal(entry.modes, modes, "%d", entry.word)
	}
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []int64{1, 1002, 21101, 3, 203, 104, 1105, 206, 1107, 20208, 109, 99} {
		inst, err := Decode(word)
		assert.NoError(err)
		assert.Equal(word, Encode(inst))
	}

	// Mode digits past the arity do not survive a round trip.
	inst, err := Decode(1103)
	assert.NoError(err)
	assert.Equal(int64(103), Encode(inst))
}

func TestOpWidth(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op    Op
		width int64
		roles []Role
	}){
		{OP_ADD, 4, []Role{ROLE_READ, ROLE_READ, ROLE_WRITE}},
		{OP_MUL, 4, []Role{ROLE_READ, ROLE_READ, ROLE_WRITE}},
		{OP_IN, 2, []Role{ROLE_WRITE}},
		{OP_OUT, 2, []Role{ROLE_READ}},
		{OP_JNZ, 3, []Role{ROLE_READ, ROLE_READ}},
		{OP_JZ, 3, []Role{ROLE_READ, ROLE_READ}},
		{OP_LT, 4, []Role{ROLE_READ, ROLE_READ, ROLE_WRITE}},
		{OP_EQ, 4, []Role{ROLE_READ, ROLE_READ, ROLE_WRITE}},
		{OP_ARB, 2, []Role{ROLE_READ}},
		{OP_HALT, 1, []Role{}},
	}

	assert.Equal(10, len(opRoles))

	for _, entry := range table {
		assert.True(entry.op.Valid(), entry.op.String())
		assert.Equal(entry.width, entry.op.Width(), entry.op.String())
		assert.Equal(entry.roles, entry.op.Roles(), entry.op.String())
	}

	assert.False(Op(0).Valid())
	assert.False(Op(42).Valid())
}

func TestMakeInstruction(t *testing.T) {
	assert := assert.New(t)

	a := Parameter{Mode: MODE_DIRECT, Value: 4}
	b := Parameter{Mode: MODE_IMMEDIATE, Value: 3}

	inst, err := MakeInstruction(OP_MUL, a, b, a)
	assert.NoError(err)
	assert.Equal("mul 4 #3 4", inst.String())
	assert.Equal([]int64{1002, 4, 3, 4}, inst.Codes())

	_, err = MakeInstruction(OP_MUL, a, b)
	assert.Equal(ErrOpcodeValueMissing, err)

	_, err = MakeInstruction(OP_OUT, a, b)
	assert.Equal(ErrOpcodeExtraArgs, err)

	_, err = MakeInstruction(Op(42))
	assert.Equal(ErrUnknownOpcode(42), err)

	inst, err = MakeInstruction(OP_HALT)
	assert.NoError(err)
	assert.Equal("halt", inst.String())
	assert.Equal([]int64{99}, inst.Codes())
}

func TestParameterString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("12", Parameter{Mode: MODE_DIRECT, Value: 12}.String())
	assert.Equal("#-3", Parameter{Mode: MODE_IMMEDIATE, Value: -3}.String())
	assert.Equal("@-1", Parameter{Mode: MODE_RELATIVE, Value: -1}.String())

	assert.True(MODE_DIRECT.Writable())
	assert.False(MODE_IMMEDIATE.Writable())
	assert.True(MODE_RELATIVE.Writable())
}

func TestEnumString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("arb", OP_ARB.String())
	assert.Equal("halt", OP_HALT.String())
	assert.Equal("Op(42)", Op(42).String())

	assert.Equal("direct", MODE_DIRECT.String())
	assert.Equal("immediate", MODE_IMMEDIATE.String())
	assert.Equal("relative", MODE_RELATIVE.String())
	assert.Equal("Mode(3)", Mode(3).String())
}
