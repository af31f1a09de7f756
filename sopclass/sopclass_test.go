package sopclass_test

import (
	"testing"

	"github.com/dcmnet/go-dimse/sopclass"
	"github.com/stretchr/testify/require"
)

func TestFindByUID(t *testing.T) {
	s, ok := sopclass.FindByUID("1.2.840.10008.1.1")
	require.True(t, ok)
	require.Equal(t, "VerificationSOPClass", s.Name)

	_, ok = sopclass.FindByUID("1.2.3.4")
	require.False(t, ok)
}

func TestUIDName(t *testing.T) {
	require.Equal(t, "CTImageStorage", sopclass.UIDName("1.2.840.10008.5.1.4.1.1.2"))
	// Unlisted UIDs fall back to the standard dictionary.
	require.NotEmpty(t, sopclass.UIDName("1.2.840.10008.1.2"))
}
