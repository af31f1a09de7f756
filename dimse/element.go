package dimse

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/suyashkumar/dicom"
	dicomtag "github.com/suyashkumar/dicom/pkg/tag"
)

// NewElement builds a command set element for the given tag. The value
// representation is taken from the tag dictionary.
func NewElement(t dicomtag.Tag, v interface{}) (*dicom.Element, error) {
	switch value := v.(type) {
	case uint16:
		return dicom.NewElement(t, []int{int(value)})
	case uint32:
		return dicom.NewElement(t, []int{int(value)})
	case int:
		return dicom.NewElement(t, []int{value})
	case CommandDataSetType:
		return dicom.NewElement(t, []int{int(value)})
	case StatusCode:
		return dicom.NewElement(t, []int{int(value)})
	case string:
		return dicom.NewElement(t, []string{value})
	default:
		return nil, fmt.Errorf("NewElement: unsupported value type %T for tag %s", v, t.String())
	}
}

// EncodeElements writes the given elements, in order, as Implicit+LE.
func EncodeElements(out io.Writer, elems []*dicom.Element) error {
	writer, err := dicom.NewWriter(out)
	if err != nil {
		return fmt.Errorf("EncodeElements: error creating writer: %w", err)
	}
	writer.SetTransferSyntax(binary.LittleEndian, true)
	for _, elem := range elems {
		if err := writer.WriteElement(elem); err != nil {
			return fmt.Errorf("EncodeElements: error writing element %s: %w", elem.Tag.String(), err)
		}
	}
	return nil
}
