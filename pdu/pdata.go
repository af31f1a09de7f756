// Package pdu implements the P-DATA-TF PDU defined in P3.8, the one PDU the
// DIMSE layer consumes. Association negotiation PDUs (A-ASSOCIATE and
// friends) belong to the transport that owns the connection and are not
// handled here.
//
// http://dicom.nema.org/medical/dicom/current/output/pdf/part08.pdf
package pdu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/suyashkumar/dicom/pkg/dicomio"
)

// Type defines the type byte of a PDU packet. P3.8 9.3.
type Type byte

const (
	TypeAAssociateRq Type = 1
	TypeAAssociateAc Type = 2
	TypeAAssociateRj Type = 3
	TypePDataTf      Type = 4
	TypeAReleaseRq   Type = 5
	TypeAReleaseRp   Type = 6
	TypeAAbort       Type = 7
)

// PresentationDataValueItem is one fragment of a P_DATA_TF PDU. P3.8 9.3.5.1.
type PresentationDataValueItem struct {
	ContextID byte

	// Command is true for a command set fragment, false for a data set
	// fragment.
	Command bool
	// Last is true on the final fragment of a command or data set.
	Last bool

	Value []byte
}

func (v *PresentationDataValueItem) String() string {
	return fmt.Sprintf("PresentationDataValueItem{context:%d cmd:%v last:%v value:%d bytes}",
		v.ContextID, v.Command, v.Last, len(v.Value))
}

// PDataTf is the P_DATA_TF PDU. P3.8 9.3.5.
type PDataTf struct {
	Items []PresentationDataValueItem
}

func (pdu *PDataTf) String() string {
	return fmt.Sprintf("P_DATA_TF{items:%d}", len(pdu.Items))
}

// Write serializes the PDU payload, excluding the 6-byte PDU header.
func (pdu *PDataTf) Write() ([]byte, error) {
	var buf bytes.Buffer
	e := dicomio.NewWriter(&buf, binary.BigEndian, false)
	for _, item := range pdu.Items {
		var header byte
		if item.Command {
			header |= 1
		}
		if item.Last {
			header |= 2
		}
		if err := e.WriteUInt32(uint32(2 + len(item.Value))); err != nil {
			return nil, err
		}
		if err := e.WriteByte(item.ContextID); err != nil {
			return nil, err
		}
		if err := e.WriteByte(header); err != nil {
			return nil, err
		}
		if err := e.WriteBytes(item.Value); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// EncodePDU serializes a P_DATA_TF into bytes, including the PDU header.
func EncodePDU(pdu *PDataTf) ([]byte, error) {
	payload, err := pdu.Write()
	if err != nil {
		return nil, err
	}
	var header [6]byte
	header[0] = byte(TypePDataTf)
	header[1] = 0 // Reserved.
	binary.BigEndian.PutUint32(header[2:6], uint32(len(payload)))
	return append(header[:], payload...), nil
}

// ReadPDU reads one P_DATA_TF from a stream. maxPDUSize bounds the PDU
// length accepted by the caller. Any other PDU type is an error; the
// association PDUs are the transport's to handle.
func ReadPDU(in io.Reader, maxPDUSize int) (*PDataTf, error) {
	var header [6]byte
	if _, err := io.ReadFull(in, header[:]); err != nil {
		return nil, err
	}
	pduType := Type(header[0])
	length := binary.BigEndian.Uint32(header[2:6])
	if pduType != TypePDataTf {
		return nil, fmt.Errorf("ReadPDU: unsupported PDU type %d", pduType)
	}
	if length >= uint32(maxPDUSize)*2 {
		// Avoid using too much memory. *2 is just an arbitrary slack.
		return nil, fmt.Errorf("ReadPDU: invalid length %d; it's much larger than max PDU size of %d", length, maxPDUSize)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(in, payload); err != nil {
		return nil, err
	}
	pdu := &PDataTf{}
	reader := bytes.NewReader(payload)
	for reader.Len() > 0 {
		var itemLength uint32
		if err := binary.Read(reader, binary.BigEndian, &itemLength); err != nil {
			return nil, fmt.Errorf("ReadPDU: failed to read item length: %w", err)
		}
		if itemLength < 2 || int(itemLength) > reader.Len() {
			return nil, fmt.Errorf("ReadPDU: invalid item length %d", itemLength)
		}
		item := PresentationDataValueItem{}
		contextID, _ := reader.ReadByte()
		flags, _ := reader.ReadByte()
		item.ContextID = contextID
		item.Command = flags&1 != 0
		item.Last = flags&2 != 0
		item.Value = make([]byte, itemLength-2)
		if _, err := io.ReadFull(reader, item.Value); err != nil {
			return nil, fmt.Errorf("ReadPDU: failed to read item value: %w", err)
		}
		pdu.Items = append(pdu.Items, item)
	}
	return pdu, nil
}
