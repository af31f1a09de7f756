package dimse

import (
	"testing"

	"github.com/dcmnet/go-dimse/commandset"
	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
)

func TestStatusToElementsSuccess(t *testing.T) {
	s := Success
	elems, err := s.ToElements()
	require.NoError(t, err)
	require.Len(t, elems, 1)
	require.Equal(t, commandset.Status, elems[0].Tag)
	require.Equal(t, []int{0}, elems[0].Value.GetValue())
}

func TestStatusToElementsWithComment(t *testing.T) {
	s := Status{Status: CStoreOutOfResources, ErrorComment: "disk full"}
	elems, err := s.ToElements()
	require.NoError(t, err)
	require.Len(t, elems, 2)
	require.Equal(t, commandset.Status, elems[0].Tag)
	require.Equal(t, commandset.ErrorComment, elems[1].Tag)
	require.Equal(t, []string{"disk full"}, elems[1].Value.GetValue())
}

func TestGetStatus(t *testing.T) {
	s := Status{Status: StatusSOPClassNotSupported, ErrorComment: "no such class"}
	elems, err := s.ToElements()
	require.NoError(t, err)
	d := newMessageDecoder(elems)
	decoded, err := d.GetStatus()
	require.NoError(t, err)
	require.Equal(t, s, decoded)
	require.Nil(t, d.UnparsedElements())
}

// Absent auxiliary elements are not an error; different operations attach
// different payloads to the same status categories.
func TestGetStatusWithoutComment(t *testing.T) {
	elem, err := NewElement(commandset.Status, uint16(StatusCancel))
	require.NoError(t, err)
	d := newMessageDecoder([]*dicom.Element{elem})
	decoded, err := d.GetStatus()
	require.NoError(t, err)
	require.Equal(t, StatusCancel, decoded.Status)
	require.Empty(t, decoded.ErrorComment)
}

func TestGetStatusMissingCode(t *testing.T) {
	d := newMessageDecoder(nil)
	_, err := d.GetStatus()
	require.ErrorIs(t, err, ErrElementNotFound)
}
