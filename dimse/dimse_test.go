package dimse_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/dcmnet/go-dimse/commandset"
	"github.com/dcmnet/go-dimse/dimse"
	"github.com/stretchr/testify/require"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

func roundTrip(t *testing.T, v dimse.Message) dimse.Message {
	t.Helper()
	elems, err := dimse.Elements(v)
	require.NoError(t, err)
	dataset := dicom.Dataset{Elements: elems}
	decoded, err := dimse.ReadMessage(&dataset)
	require.NoError(t, err)
	require.Equal(t, v, decoded)
	return decoded
}

func TestCStoreRq(t *testing.T) {
	roundTrip(t, &dimse.CStoreRq{
		AffectedSOPClassUID:                  "1.2.840.10008.5.1.4.1.1.2",
		MessageID:                            0x1234,
		Priority:                             0,
		CommandDataSetType:                   dimse.CommandDataSetTypeNonNull,
		AffectedSOPInstanceUID:               "1.2.3.4.5",
		MoveOriginatorApplicationEntityTitle: "MOVESCU",
		MoveOriginatorMessageID:              0x3456,
	})
}

func TestCStoreRsp(t *testing.T) {
	roundTrip(t, &dimse.CStoreRsp{
		AffectedSOPClassUID:       "1.2.840.10008.5.1.4.1.1.2",
		MessageIDBeingRespondedTo: 0x1234,
		CommandDataSetType:        dimse.CommandDataSetTypeNull,
		AffectedSOPInstanceUID:    "1.2.3.4.5",
		Status:                    dimse.Status{Status: dimse.CStoreCannotUnderstand, ErrorComment: "unsupported syntax"},
	})
}

func TestCFindRoundTrip(t *testing.T) {
	roundTrip(t, &dimse.CFindRq{
		AffectedSOPClassUID: "1.2.840.10008.5.1.4.1.2.2.1",
		MessageID:           5,
		Priority:            2,
		CommandDataSetType:  dimse.CommandDataSetTypeNonNull,
	})
	roundTrip(t, &dimse.CFindRsp{
		AffectedSOPClassUID:       "1.2.840.10008.5.1.4.1.2.2.1",
		MessageIDBeingRespondedTo: 5,
		CommandDataSetType:        dimse.CommandDataSetTypeNonNull,
		Status:                    dimse.Status{Status: dimse.StatusPending},
	})
}

func TestCGetRoundTrip(t *testing.T) {
	roundTrip(t, &dimse.CGetRq{
		AffectedSOPClassUID: "1.2.840.10008.5.1.4.1.2.1.3",
		MessageID:           9,
		Priority:            0,
		CommandDataSetType:  dimse.CommandDataSetTypeNonNull,
	})
	roundTrip(t, &dimse.CGetRsp{
		AffectedSOPClassUID:            "1.2.840.10008.5.1.4.1.2.1.3",
		MessageIDBeingRespondedTo:      9,
		CommandDataSetType:             dimse.CommandDataSetTypeNull,
		NumberOfRemainingSuboperations: 2,
		NumberOfCompletedSuboperations: 3,
		NumberOfFailedSuboperations:    1,
		NumberOfWarningSuboperations:   4,
		Status:                         dimse.Status{Status: dimse.StatusPending},
	})
}

func TestCMoveRoundTrip(t *testing.T) {
	roundTrip(t, &dimse.CMoveRq{
		AffectedSOPClassUID: "1.2.840.10008.5.1.4.1.2.2.2",
		MessageID:           11,
		Priority:            1,
		MoveDestination:     "STORESCP",
		CommandDataSetType:  dimse.CommandDataSetTypeNonNull,
	})
	roundTrip(t, &dimse.CMoveRsp{
		AffectedSOPClassUID:            "1.2.840.10008.5.1.4.1.2.2.2",
		MessageIDBeingRespondedTo:      11,
		CommandDataSetType:             dimse.CommandDataSetTypeNull,
		NumberOfCompletedSuboperations: 7,
		Status:                         dimse.Success,
	})
}

func TestCEchoRoundTrip(t *testing.T) {
	roundTrip(t, &dimse.CEchoRq{MessageID: 0x1234, CommandDataSetType: dimse.CommandDataSetTypeNull})
	roundTrip(t, &dimse.CEchoRsp{
		MessageIDBeingRespondedTo: 0x1234,
		CommandDataSetType:        dimse.CommandDataSetTypeNull,
		Status:                    dimse.Status{Status: dimse.StatusCode(0x2345)},
	})
}

func TestCCancelRoundTrip(t *testing.T) {
	roundTrip(t, &dimse.CCancelRq{MessageIDBeingRespondedTo: 3, CommandDataSetType: dimse.CommandDataSetTypeNull})
}

// Encoding a C-ECHO-RQ must yield exactly the command field, the message ID,
// and the data set type, in that order.
func TestCEchoRqElements(t *testing.T) {
	elems, err := dimse.Elements(&dimse.CEchoRq{MessageID: 7, CommandDataSetType: 0x0101})
	require.NoError(t, err)
	require.Len(t, elems, 3)
	require.Equal(t, commandset.CommandField, elems[0].Tag)
	require.Equal(t, []int{0x0030}, elems[0].Value.GetValue())
	require.Equal(t, commandset.MessageID, elems[1].Tag)
	require.Equal(t, []int{7}, elems[1].Value.GetValue())
	require.Equal(t, commandset.CommandDataSetType, elems[2].Tag)
	require.Equal(t, []int{0x0101}, elems[2].Value.GetValue())
}

// A success status must not emit auxiliary status elements.
func TestCStoreRspSuccessElements(t *testing.T) {
	v := &dimse.CStoreRsp{
		AffectedSOPClassUID:       "1.2.840.10008.5.1.4.1.1.2",
		MessageIDBeingRespondedTo: 1,
		CommandDataSetType:        dimse.CommandDataSetTypeNull,
		AffectedSOPInstanceUID:    "1.2.3",
		Status:                    dimse.Success,
	}
	elems, err := dimse.Elements(v)
	require.NoError(t, err)
	require.Len(t, elems, 6)
	for _, elem := range elems {
		require.NotEqual(t, commandset.ErrorComment, elem.Tag)
	}
	decoded := roundTrip(t, v).(*dimse.CStoreRsp)
	require.Equal(t, dimse.StatusSuccess, decoded.Status.Status)
	require.Equal(t, "1.2.3", decoded.AffectedSOPInstanceUID)
}

// Optional fields at their zero value must not appear on the wire, and a
// stream lacking them must decode back to the zero value.
func TestOptionalFieldOmission(t *testing.T) {
	v := &dimse.CStoreRq{
		AffectedSOPClassUID:    "1.2.840.10008.5.1.4.1.1.2",
		MessageID:              1,
		CommandDataSetType:     dimse.CommandDataSetTypeNonNull,
		AffectedSOPInstanceUID: "1.2.3",
	}
	elems, err := dimse.Elements(v)
	require.NoError(t, err)
	for _, elem := range elems {
		require.NotEqual(t, commandset.MoveOriginatorApplicationEntityTitle, elem.Tag)
		require.NotEqual(t, commandset.MoveOriginatorMessageID, elem.Tag)
	}
	decoded := roundTrip(t, v).(*dimse.CStoreRq)
	require.Zero(t, decoded.MoveOriginatorMessageID)
	require.Empty(t, decoded.MoveOriginatorApplicationEntityTitle)
}

// Elements whose tags the schema does not name must survive a decode/encode
// round trip verbatim, in order.
func TestExtraElementsPreserved(t *testing.T) {
	charset, err := dicom.NewElement(tag.SpecificCharacterSet, []string{"ISO_IR 100"})
	require.NoError(t, err)
	patient, err := dicom.NewElement(tag.PatientName, []string{"DOE^JANE"})
	require.NoError(t, err)

	v := &dimse.CEchoRq{
		MessageID:          1,
		CommandDataSetType: dimse.CommandDataSetTypeNull,
		Extra:              []*dicom.Element{charset, patient},
	}
	elems, err := dimse.Elements(v)
	require.NoError(t, err)
	require.Equal(t, charset, elems[len(elems)-2])
	require.Equal(t, patient, elems[len(elems)-1])

	dataset := dicom.Dataset{Elements: elems}
	decoded, err := dimse.ReadMessage(&dataset)
	require.NoError(t, err)
	require.Equal(t, []*dicom.Element{charset, patient}, decoded.(*dimse.CEchoRq).Extra)

	reencoded, err := dimse.Elements(decoded)
	require.NoError(t, err)
	require.Equal(t, elems, reencoded)
}

// Encoded messages must come back intact through the standard dataset
// parser, not just through element-level round trips.
func TestWireRoundTrip(t *testing.T) {
	for _, v := range []dimse.Message{
		&dimse.CStoreRq{
			AffectedSOPClassUID:                  "1.2.840.10008.5.1.4.1.1.2",
			MessageID:                            0x1234,
			CommandDataSetType:                   dimse.CommandDataSetTypeNonNull,
			AffectedSOPInstanceUID:               "1.2.3.4.5",
			MoveOriginatorApplicationEntityTitle: "MOVESCU",
			MoveOriginatorMessageID:              0x3456,
		},
		&dimse.CMoveRsp{
			AffectedSOPClassUID:            "1.2.840.10008.5.1.4.1.2.2.2",
			MessageIDBeingRespondedTo:      11,
			CommandDataSetType:             dimse.CommandDataSetTypeNull,
			NumberOfRemainingSuboperations: 2,
			NumberOfCompletedSuboperations: 7,
			NumberOfFailedSuboperations:    1,
			NumberOfWarningSuboperations:   3,
			Status:                         dimse.Status{Status: dimse.StatusPending},
		},
	} {
		var buf bytes.Buffer
		require.NoError(t, dimse.EncodeMessage(&buf, v))
		dataset, err := dicom.Parse(bytes.NewReader(buf.Bytes()), int64(buf.Len()), nil,
			dicom.SkipPixelData(), dicom.SkipMetadataReadOnNewParserInit())
		require.NoError(t, err)
		decoded, err := dimse.ReadMessage(&dataset)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

// A failing sink must surface as an error, not as truncated output.
func TestEncodeMessageWriteError(t *testing.T) {
	err := dimse.EncodeMessage(failingWriter{}, &dimse.CEchoRq{MessageID: 1, CommandDataSetType: dimse.CommandDataSetTypeNull})
	require.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	elem, err := dimse.NewElement(commandset.CommandField, uint16(0x0099))
	require.NoError(t, err)
	dataset := dicom.Dataset{Elements: []*dicom.Element{elem}}
	_, err = dimse.ReadMessage(&dataset)
	var unknownErr *dimse.UnknownCommandError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, uint16(0x0099), unknownErr.CommandField)
}

func TestMissingCommandField(t *testing.T) {
	elem, err := dimse.NewElement(commandset.MessageID, uint16(1))
	require.NoError(t, err)
	dataset := dicom.Dataset{Elements: []*dicom.Element{elem}}
	_, err = dimse.ReadMessage(&dataset)
	var unknownErr *dimse.UnknownCommandError
	require.ErrorAs(t, err, &unknownErr)
}

func TestMissingRequiredField(t *testing.T) {
	commandField, err := dimse.NewElement(commandset.CommandField, dimse.CommandFieldCEchoRq)
	require.NoError(t, err)
	dataSetType, err := dimse.NewElement(commandset.CommandDataSetType, uint16(0x0101))
	require.NoError(t, err)
	dataset := dicom.Dataset{Elements: []*dicom.Element{commandField, dataSetType}}
	_, err = dimse.ReadMessage(&dataset)
	var missingErr *dimse.MissingRequiredFieldError
	require.ErrorAs(t, err, &missingErr)
	require.Equal(t, "C_ECHO_RQ", missingErr.Kind)
	require.Equal(t, "MessageID", missingErr.Field)
}

// The codec holds no mutable state, so concurrent round trips over
// independent messages need no coordination.
func TestConcurrentRoundTrips(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id uint16) {
			defer wg.Done()
			elems, err := dimse.Elements(&dimse.CEchoRq{MessageID: id, CommandDataSetType: dimse.CommandDataSetTypeNull})
			if err != nil {
				t.Error(err)
				return
			}
			dataset := dicom.Dataset{Elements: elems}
			decoded, err := dimse.ReadMessage(&dataset)
			if err != nil {
				t.Error(err)
				return
			}
			if decoded.GetMessageID() != id {
				t.Errorf("got message ID %d, want %d", decoded.GetMessageID(), id)
			}
		}(uint16(i + 1))
	}
	wg.Wait()
}
