package dimse

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/dcmnet/go-dimse/pdu"
	"github.com/grailbio/go-dicom/dicomlog"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/dicomio"
	dicomtag "github.com/suyashkumar/dicom/pkg/tag"
)

// dicom.Parse infers the transfer syntax by peeking at the first 100 bytes
// of input, so it rejects anything shorter. Command sets below that size
// (C-ECHO, C-CANCEL) are decoded directly; DIMSE commands are always
// Implicit VR Little Endian, so there is nothing to infer. P3.7 6.3.1.
const parseMinBytes = 100

// decodeCommandElements reads an Implicit VR Little Endian command set into
// elements. Command sets are flat, so each element is tag, 32-bit length,
// value.
func decodeCommandElements(data []byte) ([]*dicom.Element, error) {
	r := dicomio.NewReader(bufio.NewReader(bytes.NewReader(data)), binary.LittleEndian, int64(len(data)))
	var elems []*dicom.Element
	for r.BytesLeftUntilLimit() > 0 {
		group, err := r.ReadUInt16()
		if err != nil {
			return nil, fmt.Errorf("decodeCommandElements: error reading tag group: %w", err)
		}
		element, err := r.ReadUInt16()
		if err != nil {
			return nil, fmt.Errorf("decodeCommandElements: error reading tag element: %w", err)
		}
		vl, err := r.ReadUInt32()
		if err != nil {
			return nil, fmt.Errorf("decodeCommandElements: error reading value length: %w", err)
		}
		elem, err := readCommandValue(r, dicomtag.Tag{Group: group, Element: element}, vl)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

func readCommandValue(r *dicomio.Reader, t dicomtag.Tag, vl uint32) (*dicom.Element, error) {
	vr := dicomtag.UnknownVR
	if info, err := dicomtag.Find(t); err == nil {
		vr = info.VRs[0]
	}
	var raw interface{}
	switch vr {
	case "US", "AT":
		vals := make([]int, 0, vl/2)
		for i := uint32(0); i < vl; i += 2 {
			v, err := r.ReadUInt16()
			if err != nil {
				return nil, fmt.Errorf("readCommandValue: error reading %s value: %w", t.String(), err)
			}
			vals = append(vals, int(v))
		}
		raw = vals
	case "UL":
		vals := make([]int, 0, vl/4)
		for i := uint32(0); i < vl; i += 4 {
			v, err := r.ReadUInt32()
			if err != nil {
				return nil, fmt.Errorf("readCommandValue: error reading %s value: %w", t.String(), err)
			}
			vals = append(vals, int(v))
		}
		raw = vals
	case "UN", "OB", "OW":
		buf := make([]byte, vl)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("readCommandValue: error reading %s value: %w", t.String(), err)
		}
		raw = buf
	default:
		s, err := r.ReadString(vl)
		if err != nil {
			return nil, fmt.Errorf("readCommandValue: error reading %s value: %w", t.String(), err)
		}
		raw = strings.Split(strings.Trim(s, " \000"), "\\")
	}
	value, err := dicom.NewValue(raw)
	if err != nil {
		return nil, fmt.Errorf("readCommandValue: error building %s value: %w", t.String(), err)
	}
	return &dicom.Element{
		Tag:                    t,
		ValueRepresentation:    dicomtag.GetVRKind(t, vr),
		RawValueRepresentation: vr,
		ValueLength:            vl,
		Value:                  value,
	}, nil
}

// CommandAssembler is a helper that assembles a DIMSE command message and
// data payload from a sequence of P_DATA_TF PDUs.
type CommandAssembler struct {
	contextID      byte
	commandBytes   []byte
	command        Message
	dataBytes      []byte
	readAllCommand bool

	readAllData bool
}

// AddDataPDU is to be called for each P_DATA_TF PDU received from the
// network. Once the last fragment of both the command and any data payload
// has arrived, it returns <contextID, message, payload, nil>. If it needs
// more fragments, it returns <0, nil, nil, nil>. On error, it returns a
// non-nil error.
func (commandAssembler *CommandAssembler) AddDataPDU(pdataTf *pdu.PDataTf) (byte, Message, []byte, error) {
	for _, item := range pdataTf.Items {
		if commandAssembler.contextID == 0 {
			commandAssembler.contextID = item.ContextID
		} else if commandAssembler.contextID != item.ContextID {
			return 0, nil, nil, fmt.Errorf("mixed context: %d %d", commandAssembler.contextID, item.ContextID)
		}
		if item.Command {
			commandAssembler.commandBytes = append(commandAssembler.commandBytes, item.Value...)
			if item.Last {
				if commandAssembler.readAllCommand {
					return 0, nil, nil, fmt.Errorf("P_DATA_TF: found >1 command chunks with the Last bit set")
				}
				commandAssembler.readAllCommand = true
			}
		} else {
			commandAssembler.dataBytes = append(commandAssembler.dataBytes, item.Value...)
			if item.Last {
				if commandAssembler.readAllData {
					return 0, nil, nil, fmt.Errorf("P_DATA_TF: found >1 data chunks with the Last bit set")
				}
				commandAssembler.readAllData = true
			}
		}
	}
	if !commandAssembler.readAllCommand {
		return 0, nil, nil, nil
	}
	if commandAssembler.command == nil {
		var dataset dicom.Dataset
		if len(commandAssembler.commandBytes) < parseMinBytes {
			elems, err := decodeCommandElements(commandAssembler.commandBytes)
			if err != nil {
				return 0, nil, nil, fmt.Errorf("P_DATA_TF: failed to parse command bytes: %w", err)
			}
			dataset = dicom.Dataset{Elements: elems}
		} else {
			ioReader := bytes.NewReader(commandAssembler.commandBytes)
			var err error
			dataset, err = dicom.Parse(ioReader, int64(ioReader.Len()), nil,
				dicom.SkipPixelData(), dicom.SkipMetadataReadOnNewParserInit())
			if err != nil {
				return 0, nil, nil, fmt.Errorf("P_DATA_TF: failed to parse command bytes: %w", err)
			}
		}
		var err error
		commandAssembler.command, err = ReadMessage(&dataset)
		if err != nil {
			return 0, nil, nil, err
		}
		dicomlog.Vprintf(1, "dimse.CommandAssembler: assembled command %v", commandAssembler.command)
	}
	if commandAssembler.command.HasData() && !commandAssembler.readAllData {
		return 0, nil, nil, nil
	}
	contextID := commandAssembler.contextID
	command := commandAssembler.command
	dataBytes := commandAssembler.dataBytes
	*commandAssembler = CommandAssembler{}
	return contextID, command, dataBytes, nil
}
