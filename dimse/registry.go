package dimse

import (
	"fmt"
	"reflect"

	"github.com/dcmnet/go-dimse/commandset"
	dicomtag "github.com/suyashkumar/dicom/pkg/tag"
)

// FieldType enumerates the value types a command set field may carry.
type FieldType int

const (
	UInt16 FieldType = iota
	UInt32
	String
	// StatusType marks the composite Status field, which may expand to
	// multiple wire elements. See status.go.
	StatusType
)

// Direction tells whether a message kind is a request or a response.
type Direction int

const (
	Request Direction = iota
	Response
)

// FieldSpec describes one command set field of a message kind. Name is both
// the P3.7 keyword and the Go struct field name on the typed message.
//
// Required fields are always present on the wire. Optional fields are
// omitted when they hold their type's zero value, which makes an unset
// optional field indistinguishable from an explicit zero; P3.7 attaches no
// meaning to zero for the fields marked optional here.
type FieldSpec struct {
	Name     string
	Tag      dicomtag.Tag
	Type     FieldType
	Required bool
}

// MessageKindSpec describes one DIMSE message kind: its dispatch key, its
// direction, and its fields in wire order.
type MessageKindSpec struct {
	Name         string
	Direction    Direction
	CommandField uint16
	Fields       []FieldSpec

	newMessage func() Message
}

var messageKinds = []*MessageKindSpec{
	{
		Name:         "C_STORE_RQ",
		Direction:    Request,
		CommandField: CommandFieldCStoreRq,
		newMessage:   func() Message { return &CStoreRq{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageID", Tag: commandset.MessageID, Type: UInt16, Required: true},
			{Name: "Priority", Tag: commandset.Priority, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
			{Name: "AffectedSOPInstanceUID", Tag: commandset.AffectedSOPInstanceUID, Type: String, Required: true},
			{Name: "MoveOriginatorApplicationEntityTitle", Tag: commandset.MoveOriginatorApplicationEntityTitle, Type: String},
			{Name: "MoveOriginatorMessageID", Tag: commandset.MoveOriginatorMessageID, Type: UInt16},
		},
	},
	{
		Name:         "C_STORE_RSP",
		Direction:    Response,
		CommandField: CommandFieldCStoreRsp,
		newMessage:   func() Message { return &CStoreRsp{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageIDBeingRespondedTo", Tag: commandset.MessageIDBeingRespondedTo, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
			{Name: "AffectedSOPInstanceUID", Tag: commandset.AffectedSOPInstanceUID, Type: String, Required: true},
			{Name: "Status", Tag: commandset.Status, Type: StatusType, Required: true},
		},
	},
	{
		Name:         "C_FIND_RQ",
		Direction:    Request,
		CommandField: CommandFieldCFindRq,
		newMessage:   func() Message { return &CFindRq{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageID", Tag: commandset.MessageID, Type: UInt16, Required: true},
			{Name: "Priority", Tag: commandset.Priority, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
		},
	},
	{
		Name:         "C_FIND_RSP",
		Direction:    Response,
		CommandField: CommandFieldCFindRsp,
		newMessage:   func() Message { return &CFindRsp{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageIDBeingRespondedTo", Tag: commandset.MessageIDBeingRespondedTo, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
			{Name: "Status", Tag: commandset.Status, Type: StatusType, Required: true},
		},
	},
	{
		Name:         "C_GET_RQ",
		Direction:    Request,
		CommandField: CommandFieldCGetRq,
		newMessage:   func() Message { return &CGetRq{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageID", Tag: commandset.MessageID, Type: UInt16, Required: true},
			{Name: "Priority", Tag: commandset.Priority, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
		},
	},
	{
		Name:         "C_GET_RSP",
		Direction:    Response,
		CommandField: CommandFieldCGetRsp,
		newMessage:   func() Message { return &CGetRsp{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageIDBeingRespondedTo", Tag: commandset.MessageIDBeingRespondedTo, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
			{Name: "NumberOfRemainingSuboperations", Tag: commandset.NumberOfRemainingSuboperations, Type: UInt16},
			{Name: "NumberOfCompletedSuboperations", Tag: commandset.NumberOfCompletedSuboperations, Type: UInt16},
			{Name: "NumberOfFailedSuboperations", Tag: commandset.NumberOfFailedSuboperations, Type: UInt16},
			{Name: "NumberOfWarningSuboperations", Tag: commandset.NumberOfWarningSuboperations, Type: UInt16},
			{Name: "Status", Tag: commandset.Status, Type: StatusType, Required: true},
		},
	},
	{
		Name:         "C_MOVE_RQ",
		Direction:    Request,
		CommandField: CommandFieldCMoveRq,
		newMessage:   func() Message { return &CMoveRq{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageID", Tag: commandset.MessageID, Type: UInt16, Required: true},
			{Name: "Priority", Tag: commandset.Priority, Type: UInt16, Required: true},
			{Name: "MoveDestination", Tag: commandset.MoveDestination, Type: String, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
		},
	},
	{
		Name:         "C_MOVE_RSP",
		Direction:    Response,
		CommandField: CommandFieldCMoveRsp,
		newMessage:   func() Message { return &CMoveRsp{} },
		Fields: []FieldSpec{
			{Name: "AffectedSOPClassUID", Tag: commandset.AffectedSOPClassUID, Type: String, Required: true},
			{Name: "MessageIDBeingRespondedTo", Tag: commandset.MessageIDBeingRespondedTo, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
			{Name: "NumberOfRemainingSuboperations", Tag: commandset.NumberOfRemainingSuboperations, Type: UInt16},
			{Name: "NumberOfCompletedSuboperations", Tag: commandset.NumberOfCompletedSuboperations, Type: UInt16},
			{Name: "NumberOfFailedSuboperations", Tag: commandset.NumberOfFailedSuboperations, Type: UInt16},
			{Name: "NumberOfWarningSuboperations", Tag: commandset.NumberOfWarningSuboperations, Type: UInt16},
			{Name: "Status", Tag: commandset.Status, Type: StatusType, Required: true},
		},
	},
	{
		Name:         "C_ECHO_RQ",
		Direction:    Request,
		CommandField: CommandFieldCEchoRq,
		newMessage:   func() Message { return &CEchoRq{} },
		Fields: []FieldSpec{
			{Name: "MessageID", Tag: commandset.MessageID, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
		},
	},
	{
		Name:         "C_ECHO_RSP",
		Direction:    Response,
		CommandField: CommandFieldCEchoRsp,
		newMessage:   func() Message { return &CEchoRsp{} },
		Fields: []FieldSpec{
			{Name: "MessageIDBeingRespondedTo", Tag: commandset.MessageIDBeingRespondedTo, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
			{Name: "Status", Tag: commandset.Status, Type: StatusType, Required: true},
		},
	},
	{
		Name:         "C_CANCEL_RQ",
		Direction:    Request,
		CommandField: CommandFieldCCancelRq,
		newMessage:   func() Message { return &CCancelRq{} },
		Fields: []FieldSpec{
			{Name: "MessageIDBeingRespondedTo", Tag: commandset.MessageIDBeingRespondedTo, Type: UInt16, Required: true},
			{Name: "CommandDataSetType", Tag: commandset.CommandDataSetType, Type: UInt16, Required: true},
		},
	},
}

var (
	kindsByName         = make(map[string]*MessageKindSpec)
	kindsByCommandField = make(map[uint16]*MessageKindSpec)
)

// The registry is validated once at process start; a malformed table is a
// programming error, so violations panic instead of surfacing at decode
// time.
func init() {
	for _, kind := range messageKinds {
		if _, ok := kindsByName[kind.Name]; ok {
			panic(fmt.Sprintf("dimse: duplicate message kind %s", kind.Name))
		}
		kindsByName[kind.Name] = kind
		if prev, ok := kindsByCommandField[kind.CommandField]; ok {
			panic(fmt.Sprintf("dimse: command field 0x%04x claimed by both %s and %s",
				kind.CommandField, prev.Name, kind.Name))
		}
		kindsByCommandField[kind.CommandField] = kind
		validateKind(kind)
	}
}

func validateKind(kind *MessageKindSpec) {
	rv := reflect.ValueOf(kind.newMessage()).Elem()
	tags := make(map[dicomtag.Tag]string, len(kind.Fields))
	for _, f := range kind.Fields {
		if prev, ok := tags[f.Tag]; ok {
			panic(fmt.Sprintf("dimse: %s: tag %s used by both %s and %s", kind.Name, f.Tag.String(), prev, f.Name))
		}
		tags[f.Tag] = f.Name
		fv := rv.FieldByName(f.Name)
		if !fv.IsValid() {
			panic(fmt.Sprintf("dimse: %s: no struct field for schema field %s", kind.Name, f.Name))
		}
		var ok bool
		switch f.Type {
		case UInt16, UInt32:
			ok = fv.Kind() == reflect.Uint16 || fv.Kind() == reflect.Uint32
		case String:
			ok = fv.Kind() == reflect.String
		case StatusType:
			ok = fv.Type() == reflect.TypeOf(Status{})
		}
		if !ok {
			panic(fmt.Sprintf("dimse: %s: struct field %s does not match schema type", kind.Name, f.Name))
		}
	}
	if !rv.FieldByName("Extra").IsValid() {
		panic(fmt.Sprintf("dimse: %s: missing Extra field", kind.Name))
	}
}

// LookupByName returns the schema for a message kind name, e.g. "C_ECHO_RQ".
func LookupByName(name string) (*MessageKindSpec, bool) {
	kind, ok := kindsByName[name]
	return kind, ok
}

// LookupByCommandField returns the schema for a command field code. This is
// the dispatch table; it is derived from the same registry the encoder uses.
func LookupByCommandField(commandField uint16) (*MessageKindSpec, bool) {
	kind, ok := kindsByCommandField[commandField]
	return kind, ok
}
