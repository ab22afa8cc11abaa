package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCode_IsInline(t *testing.T) {
	inline := []TypeCode{Null, Bool, S32, U32, F32}
	for _, tc := range inline {
		require.True(t, tc.IsInline(), "%s should be inline", tc)
	}

	notInline := []TypeCode{S64, U64, F64, Array, Object, String8, ByteArray, TypedArrayF64}
	for _, tc := range notInline {
		require.False(t, tc.IsInline(), "%s should not be inline", tc)
	}
}

func TestTypeCode_IsReference(t *testing.T) {
	refs := []TypeCode{S64, U64, F64, Array, Object, String8, String16, String32, ByteArray, TypedArrayS8, TypedArrayF64}
	for _, tc := range refs {
		require.True(t, tc.IsReference(), "%s should be a reference type", tc)
	}

	require.False(t, Null.IsReference())
	require.False(t, Bool.IsReference())
	require.False(t, S32.IsReference())
}

func TestTypeCode_IsReserved(t *testing.T) {
	require.False(t, MaxBuiltInType.IsReserved())
	require.True(t, TypeCode(24).IsReserved())
	require.True(t, TypeCode(127).IsReserved())
	require.False(t, TypeCode(128).IsReserved())
}

func TestTypeCode_IsUserExtension(t *testing.T) {
	require.False(t, TypeCode(127).IsUserExtension())
	require.True(t, TypeCode(128).IsUserExtension())
	require.True(t, TypeCode(255).IsUserExtension())
}

func TestTypeCode_ElementSize(t *testing.T) {
	cases := map[TypeCode]int{
		TypedArrayS8:  1,
		TypedArrayU8:  1,
		TypedArrayS16: 2,
		TypedArrayU16: 2,
		TypedArrayS32: 4,
		TypedArrayU32: 4,
		TypedArrayF32: 4,
		TypedArrayS64: 8,
		TypedArrayU64: 8,
		TypedArrayF64: 8,
		Object:        0,
		Null:          0,
	}

	for tc, want := range cases {
		require.Equal(t, want, tc.ElementSize(), "%s", tc)
	}
}

func TestTypeCode_String(t *testing.T) {
	require.Equal(t, "Null", Null.String())
	require.Equal(t, "TypedArrayF64", TypedArrayF64.String())
	require.Equal(t, "Unknown", TypeCode(50).String())
	require.Equal(t, "UserExtension", TypeCode(200).String())
}
