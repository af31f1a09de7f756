// Package dimse implements the DIMSE command message codec defined in P3.7.
//
// http://dicom.nema.org/medical/dicom/current/output/pdf/part07.pdf
//
// Messages are described by a declarative schema registry; a single generic
// encoder/decoder pair consults it. The package holds no mutable state after
// init, so Encode and Decode may be called concurrently.
package dimse

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dcmnet/go-dimse/commandset"
	"github.com/suyashkumar/dicom"
)

// Message defines the common interface for all DIMSE message types.
type Message interface {
	fmt.Stringer // Print human-readable description for debugging.
	Encode(io.Writer) error
	// GetMessageID extracts the message ID field.
	GetMessageID() MessageID
	// CommandField returns the command field value of this message.
	CommandField() uint16
	// GetStatus returns the the response status value. It is nil for request message
	// types, and non-nil for response message types.
	GetStatus() *Status
	// HasData is true if we expect P_DATA_TF packets after the command packets.
	HasData() bool
}

const (
	CommandFieldCStoreRq  uint16 = 0x0001
	CommandFieldCStoreRsp uint16 = 0x8001
	CommandFieldCFindRq   uint16 = 0x0020
	CommandFieldCFindRsp  uint16 = 0x8020
	CommandFieldCGetRq    uint16 = 0x0010
	CommandFieldCGetRsp   uint16 = 0x8010
	CommandFieldCMoveRq   uint16 = 0x0021
	CommandFieldCMoveRsp  uint16 = 0x8021
	CommandFieldCEchoRq   uint16 = 0x0030
	CommandFieldCEchoRsp  uint16 = 0x8030
	CommandFieldCCancelRq uint16 = 0x0fff
)

type MessageID = uint16

type CommandDataSetType uint16

const (
	// CommandDataSetTypeNull indicates that the DIMSE message has no data payload,
	// when set in the CommandDataSetType field. Any other value indicates the
	// existence of a payload.
	CommandDataSetTypeNull CommandDataSetType = 0x101

	// CommandDataSetTypeNonNull indicates that the DIMSE message has a data
	// payload, when set in the CommandDataSetType field.
	CommandDataSetTypeNonNull CommandDataSetType = 1
)

// ReadMessage decodes a command set into a typed message. The dataset holds
// the command elements in wire order. Elements not named in the message
// schema are preserved in the message's Extra field, also in wire order.
func ReadMessage(dataset *dicom.Dataset) (Message, error) {
	mDecoder := newMessageDecoder(dataset.Elements)
	// The group length is regenerated on encode; letting it fall through to
	// Extra would duplicate it on a re-encode.
	if _, err := mDecoder.GetUInt32(commandset.CommandGroupLength, OptionalElement); err != nil {
		return nil, fmt.Errorf("ReadMessage: failed to get command group length: %w", err)
	}
	commandField, err := mDecoder.GetUInt16(commandset.CommandField, RequiredElement)
	if err != nil {
		if errors.Is(err, ErrElementNotFound) {
			return nil, &UnknownCommandError{}
		}
		return nil, fmt.Errorf("ReadMessage: failed to get command field: %w", err)
	}
	return mDecoder.Decode(commandField)
}

// EncodeMessage serializes the given message, prefixed with the
// CommandGroupLength element. DIMSE messages are always encoded Implicit+LE.
// See P3.7 6.3.1.
func EncodeMessage(out io.Writer, v Message) error {
	subEncoderBuffer := bytes.Buffer{}
	if err := v.Encode(&subEncoderBuffer); err != nil {
		return fmt.Errorf("EncodeMessage: error encoding message: %w", err)
	}
	writer, err := dicom.NewWriter(out)
	if err != nil {
		return fmt.Errorf("EncodeMessage: error creating writer: %w", err)
	}
	writer.SetTransferSyntax(binary.LittleEndian, true)
	element, err := NewElement(commandset.CommandGroupLength, subEncoderBuffer.Len())
	if err != nil {
		return fmt.Errorf("EncodeMessage: failed to create CommandGroupLength element: %w", err)
	}
	if err := writer.WriteElement(element); err != nil {
		return fmt.Errorf("EncodeMessage: error writing CommandGroupLength element: %w", err)
	}
	if _, err := out.Write(subEncoderBuffer.Bytes()); err != nil {
		return fmt.Errorf("EncodeMessage: error writing message body: %w", err)
	}
	return nil
}
