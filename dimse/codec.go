package dimse

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dcmnet/go-dimse/commandset"
	"github.com/suyashkumar/dicom"
)

// Elements returns the ordered element sequence for a message: the command
// field element, the schema fields in declared order (optional fields
// omitted at their zero value), and finally the Extra elements verbatim.
func Elements(v Message) ([]*dicom.Element, error) {
	kind, ok := LookupByCommandField(v.CommandField())
	if !ok {
		return nil, &UnknownCommandError{CommandField: v.CommandField()}
	}
	rv := reflect.ValueOf(v).Elem()
	elems := make([]*dicom.Element, 0, len(kind.Fields)+2)
	elem, err := NewElement(commandset.CommandField, kind.CommandField)
	if err != nil {
		return nil, fmt.Errorf("%s.Encode: failed to create CommandField element: %w", kind.Name, err)
	}
	elems = append(elems, elem)
	for _, f := range kind.Fields {
		fv := rv.FieldByName(f.Name)
		switch f.Type {
		case UInt16, UInt32:
			value := fv.Uint()
			if !f.Required && value == 0 {
				continue
			}
			elem, err = NewElement(f.Tag, uint32(value))
		case String:
			value := fv.String()
			if !f.Required && value == "" {
				continue
			}
			elem, err = NewElement(f.Tag, value)
		case StatusType:
			status := fv.Interface().(Status)
			statusElems, serr := status.ToElements()
			if serr != nil {
				return nil, fmt.Errorf("%s.Encode: failed to create Status elements: %w", kind.Name, serr)
			}
			elems = append(elems, statusElems...)
			continue
		default:
			return nil, fmt.Errorf("%s.Encode: unknown field type for %s", kind.Name, f.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s.Encode: failed to create %s element: %w", kind.Name, f.Name, err)
		}
		elems = append(elems, elem)
	}
	elems = append(elems, rv.FieldByName("Extra").Interface().([]*dicom.Element)...)
	return elems, nil
}

func encodeMessage(out io.Writer, v Message) error {
	elems, err := Elements(v)
	if err != nil {
		return err
	}
	if err := EncodeElements(out, elems); err != nil {
		return fmt.Errorf("failed to encode elements: %w", err)
	}
	return nil
}

func (d *MessageDecoder) decodeMessage(kind *MessageKindSpec) (Message, error) {
	v := kind.newMessage()
	rv := reflect.ValueOf(v).Elem()
	for _, f := range kind.Fields {
		presence := OptionalElement
		if f.Required {
			presence = RequiredElement
		}
		fv := rv.FieldByName(f.Name)
		switch f.Type {
		case UInt16:
			value, err := d.GetUInt16(f.Tag, presence)
			if err != nil {
				return nil, decodeFieldError(kind, f, err)
			}
			fv.SetUint(uint64(value))
		case UInt32:
			value, err := d.GetUInt32(f.Tag, presence)
			if err != nil {
				return nil, decodeFieldError(kind, f, err)
			}
			fv.SetUint(uint64(value))
		case String:
			value, err := d.GetString(f.Tag, presence)
			if err != nil {
				return nil, decodeFieldError(kind, f, err)
			}
			fv.SetString(value)
		case StatusType:
			status, err := d.GetStatus()
			if err != nil {
				return nil, decodeFieldError(kind, f, err)
			}
			fv.Set(reflect.ValueOf(status))
		default:
			return nil, fmt.Errorf("%s.decode: unknown field type for %s", kind.Name, f.Name)
		}
	}
	if extra := d.UnparsedElements(); extra != nil {
		rv.FieldByName("Extra").Set(reflect.ValueOf(extra))
	}
	return v, nil
}

func decodeFieldError(kind *MessageKindSpec, f FieldSpec, err error) error {
	if errors.Is(err, ErrElementNotFound) {
		return &MissingRequiredFieldError{Kind: kind.Name, Field: f.Name}
	}
	return fmt.Errorf("%s.decode: failed to decode %s: %w", kind.Name, f.Name, err)
}

// messageString renders a message the way the schema declares it, for
// debugging.
func messageString(v Message) string {
	kind, ok := LookupByCommandField(v.CommandField())
	if !ok {
		return fmt.Sprintf("UnknownMessage{commandField:0x%04x}", v.CommandField())
	}
	rv := reflect.ValueOf(v).Elem()
	var b strings.Builder
	b.WriteString(kind.Name)
	b.WriteString("{")
	for i, f := range kind.Fields {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:%v", f.Name, rv.FieldByName(f.Name).Interface())
	}
	b.WriteString("}")
	return b.String()
}
