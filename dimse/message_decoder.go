package dimse

import (
	"fmt"

	"github.com/grailbio/go-dicom/dicomlog"
	"github.com/suyashkumar/dicom"
	dicomtag "github.com/suyashkumar/dicom/pkg/tag"

	"github.com/dcmnet/go-dimse/commandset"
)

// MessageDecoder is a helper for extracting values from a list of
// dicom.Element. Elements are kept in wire order; consumed elements are
// flagged rather than removed so UnparsedElements can preserve the order of
// whatever the schema did not claim.
type MessageDecoder struct {
	elements []*dicom.Element
	parsed   []bool
}

type isOptionalElement int

const (
	RequiredElement isOptionalElement = iota
	OptionalElement
)

func newMessageDecoder(elems []*dicom.Element) *MessageDecoder {
	return &MessageDecoder{
		elements: elems,
		parsed:   make([]bool, len(elems)),
	}
}

// Decode dispatches on the command field value and materializes the matching
// typed message. The dispatch table is the schema registry itself.
func (d *MessageDecoder) Decode(commandField uint16) (Message, error) {
	kind, ok := LookupByCommandField(commandField)
	if !ok {
		return nil, &UnknownCommandError{CommandField: commandField}
	}
	return d.decodeMessage(kind)
}

// findElement returns the first unconsumed element with the given tag and
// marks it consumed. A missing required element is reported through
// ErrElementNotFound.
func (d *MessageDecoder) findElement(tag dicomtag.Tag, optional isOptionalElement) (*dicom.Element, error) {
	for i, elem := range d.elements {
		if elem.Tag == tag && !d.parsed[i] {
			dicomlog.Vprintf(2, "dimse.findElement: return %v for %s", elem, commandset.Name(tag))
			d.parsed[i] = true
			return elem, nil
		}
	}
	if optional == RequiredElement {
		return nil, fmt.Errorf("%s: %w", commandset.Name(tag), ErrElementNotFound)
	}
	return nil, nil
}

// UnparsedElements returns the elements not consumed by any getter, in their
// original order. It returns nil when every element was consumed.
func (d *MessageDecoder) UnparsedElements() []*dicom.Element {
	var elems []*dicom.Element
	for i, elem := range d.elements {
		if !d.parsed[i] {
			elems = append(elems, elem)
		}
	}
	return elems
}

// GetStatus decodes the composite Status field. The status code element is
// required; auxiliary payloads are optional since different operations
// attach different payloads to the same status categories.
func (d *MessageDecoder) GetStatus() (s Status, err error) {
	statusCode, err := d.GetUInt16(commandset.Status, RequiredElement)
	if err != nil {
		return s, err
	}
	s.Status = StatusCode(statusCode)
	s.ErrorComment, err = d.GetString(commandset.ErrorComment, OptionalElement)
	if err != nil {
		return s, fmt.Errorf("GetStatus: failed to get error comment: %w", err)
	}
	return s, nil
}

// GetString finds an element with "tag" and extracts a string from it.
func (d *MessageDecoder) GetString(tag dicomtag.Tag, optional isOptionalElement) (string, error) {
	elem, err := d.findElement(tag, optional)
	if err != nil || elem == nil {
		return "", err
	}
	if elem.Value == nil {
		return "", fmt.Errorf("GetString: tag %s has no value", tag.String())
	}
	rawValue := elem.Value.GetValue()
	if rawValue == nil {
		return "", fmt.Errorf("GetString: tag %s has a nil value", tag.String())
	}
	v, ok := rawValue.([]string)
	if !ok {
		return "", fmt.Errorf("GetString: failed to convert tag %s to []string, got %d", tag.String(), elem.Value.ValueType())
	}
	if len(v) == 0 {
		return "", nil
	}
	return v[0], nil
}

// GetUInt16 finds an element with "tag" and extracts a uint16 from it.
func (d *MessageDecoder) GetUInt16(tag dicomtag.Tag, optional isOptionalElement) (uint16, error) {
	v, err := d.getInt(tag, optional)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 65535 {
		return 0, fmt.Errorf("GetUInt16: value %v of tag %s is out of range for uint16", v, tag.String())
	}
	return uint16(v), nil
}

// GetUInt32 finds an element with "tag" and extracts a uint32 from it.
func (d *MessageDecoder) GetUInt32(tag dicomtag.Tag, optional isOptionalElement) (uint32, error) {
	v, err := d.getInt(tag, optional)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xffffffff {
		return 0, fmt.Errorf("GetUInt32: value %v of tag %s is out of range for uint32", v, tag.String())
	}
	return uint32(v), nil
}

func (d *MessageDecoder) getInt(tag dicomtag.Tag, optional isOptionalElement) (int64, error) {
	elem, err := d.findElement(tag, optional)
	if err != nil || elem == nil {
		return 0, err
	}
	if elem.Value == nil {
		return 0, fmt.Errorf("getInt: tag %s has no value", tag.String())
	}
	if elem.Value.ValueType() != dicom.Ints {
		return 0, fmt.Errorf("getInt: element %s is not an int, got %v", tag.String(), elem.Value.ValueType())
	}
	rawValue := elem.Value.GetValue()
	if rawValue == nil {
		return 0, fmt.Errorf("getInt: tag %s has a nil value", tag.String())
	}
	v, ok := rawValue.([]int)
	if !ok {
		return 0, fmt.Errorf("getInt: failed to convert tag %s to []int", tag.String())
	}
	if len(v) == 0 {
		return 0, nil
	}
	return int64(v[0]), nil
}
