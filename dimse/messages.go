package dimse

import (
	"io"

	"github.com/suyashkumar/dicom"
)

// The structs below carry one Go field per schema field, in wire order, plus
// Extra for elements the schema does not name. Extra is re-encoded verbatim
// so a decode/encode round trip forwards elements this package does not
// understand. Encoding and decoding are generic; see codec.go.

// CStoreRq represents a C-STORE-RQ message. P3.7 9.3.1.1.
type CStoreRq struct {
	AffectedSOPClassUID                  string
	MessageID                            MessageID
	Priority                             uint16
	CommandDataSetType                   CommandDataSetType
	AffectedSOPInstanceUID               string
	MoveOriginatorApplicationEntityTitle string
	MoveOriginatorMessageID              MessageID
	Extra                                []*dicom.Element // Unparsed elements
}

func (v *CStoreRq) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CStoreRq) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CStoreRq) CommandField() uint16 { return CommandFieldCStoreRq }
func (v *CStoreRq) GetMessageID() MessageID { return v.MessageID }
func (v *CStoreRq) GetStatus() *Status { return nil }
func (v *CStoreRq) String() string { return messageString(v) }

// CStoreRsp represents a C-STORE-RSP message. P3.7 9.3.1.2.
type CStoreRsp struct {
	AffectedSOPClassUID       string
	MessageIDBeingRespondedTo MessageID
	CommandDataSetType        CommandDataSetType
	AffectedSOPInstanceUID    string
	Status                    Status
	Extra                     []*dicom.Element // Unparsed elements
}

func (v *CStoreRsp) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CStoreRsp) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CStoreRsp) CommandField() uint16 { return CommandFieldCStoreRsp }
func (v *CStoreRsp) GetMessageID() MessageID { return v.MessageIDBeingRespondedTo }
func (v *CStoreRsp) GetStatus() *Status { return &v.Status }
func (v *CStoreRsp) String() string { return messageString(v) }

// CFindRq represents a C-FIND-RQ message. P3.7 9.3.2.1.
type CFindRq struct {
	AffectedSOPClassUID string
	MessageID           MessageID
	Priority            uint16
	CommandDataSetType  CommandDataSetType
	Extra               []*dicom.Element // Unparsed elements
}

func (v *CFindRq) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CFindRq) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CFindRq) CommandField() uint16 { return CommandFieldCFindRq }
func (v *CFindRq) GetMessageID() MessageID { return v.MessageID }
func (v *CFindRq) GetStatus() *Status { return nil }
func (v *CFindRq) String() string { return messageString(v) }

// CFindRsp represents a C-FIND-RSP message. P3.7 9.3.2.2.
type CFindRsp struct {
	AffectedSOPClassUID       string
	MessageIDBeingRespondedTo MessageID
	CommandDataSetType        CommandDataSetType
	Status                    Status
	Extra                     []*dicom.Element // Unparsed elements
}

func (v *CFindRsp) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CFindRsp) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CFindRsp) CommandField() uint16 { return CommandFieldCFindRsp }
func (v *CFindRsp) GetMessageID() MessageID { return v.MessageIDBeingRespondedTo }
func (v *CFindRsp) GetStatus() *Status { return &v.Status }
func (v *CFindRsp) String() string { return messageString(v) }

// CGetRq represents a C-GET-RQ message. P3.7 9.3.3.1.
type CGetRq struct {
	AffectedSOPClassUID string
	MessageID           MessageID
	Priority            uint16
	CommandDataSetType  CommandDataSetType
	Extra               []*dicom.Element // Unparsed elements
}

func (v *CGetRq) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CGetRq) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CGetRq) CommandField() uint16 { return CommandFieldCGetRq }
func (v *CGetRq) GetMessageID() MessageID { return v.MessageID }
func (v *CGetRq) GetStatus() *Status { return nil }
func (v *CGetRq) String() string { return messageString(v) }

// CGetRsp represents a C-GET-RSP message. P3.7 9.3.3.2.
type CGetRsp struct {
	AffectedSOPClassUID            string
	MessageIDBeingRespondedTo      MessageID
	CommandDataSetType             CommandDataSetType
	NumberOfRemainingSuboperations uint16
	NumberOfCompletedSuboperations uint16
	NumberOfFailedSuboperations    uint16
	NumberOfWarningSuboperations   uint16
	Status                         Status
	Extra                          []*dicom.Element // Unparsed elements
}

func (v *CGetRsp) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CGetRsp) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CGetRsp) CommandField() uint16 { return CommandFieldCGetRsp }
func (v *CGetRsp) GetMessageID() MessageID { return v.MessageIDBeingRespondedTo }
func (v *CGetRsp) GetStatus() *Status { return &v.Status }
func (v *CGetRsp) String() string { return messageString(v) }

// CMoveRq represents a C-MOVE-RQ message. P3.7 9.3.4.1.
type CMoveRq struct {
	AffectedSOPClassUID string
	MessageID           MessageID
	Priority            uint16
	MoveDestination     string
	CommandDataSetType  CommandDataSetType
	Extra               []*dicom.Element // Unparsed elements
}

func (v *CMoveRq) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CMoveRq) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CMoveRq) CommandField() uint16 { return CommandFieldCMoveRq }
func (v *CMoveRq) GetMessageID() MessageID { return v.MessageID }
func (v *CMoveRq) GetStatus() *Status { return nil }
func (v *CMoveRq) String() string { return messageString(v) }

// CMoveRsp represents a C-MOVE-RSP message. P3.7 9.3.4.2.
type CMoveRsp struct {
	AffectedSOPClassUID            string
	MessageIDBeingRespondedTo      MessageID
	CommandDataSetType             CommandDataSetType
	NumberOfRemainingSuboperations uint16
	NumberOfCompletedSuboperations uint16
	NumberOfFailedSuboperations    uint16
	NumberOfWarningSuboperations   uint16
	Status                         Status
	Extra                          []*dicom.Element // Unparsed elements
}

func (v *CMoveRsp) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CMoveRsp) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CMoveRsp) CommandField() uint16 { return CommandFieldCMoveRsp }
func (v *CMoveRsp) GetMessageID() MessageID { return v.MessageIDBeingRespondedTo }
func (v *CMoveRsp) GetStatus() *Status { return &v.Status }
func (v *CMoveRsp) String() string { return messageString(v) }

// CEchoRq represents a C-ECHO-RQ message. P3.7 9.3.5.1.
type CEchoRq struct {
	MessageID          MessageID
	CommandDataSetType CommandDataSetType
	Extra              []*dicom.Element // Unparsed elements
}

func (v *CEchoRq) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CEchoRq) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CEchoRq) CommandField() uint16 { return CommandFieldCEchoRq }
func (v *CEchoRq) GetMessageID() MessageID { return v.MessageID }
func (v *CEchoRq) GetStatus() *Status { return nil }
func (v *CEchoRq) String() string { return messageString(v) }

// CEchoRsp represents a C-ECHO-RSP message. P3.7 9.3.5.2.
type CEchoRsp struct {
	MessageIDBeingRespondedTo MessageID
	CommandDataSetType        CommandDataSetType
	Status                    Status
	Extra                     []*dicom.Element // Unparsed elements
}

func (v *CEchoRsp) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CEchoRsp) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CEchoRsp) CommandField() uint16 { return CommandFieldCEchoRsp }
func (v *CEchoRsp) GetMessageID() MessageID { return v.MessageIDBeingRespondedTo }
func (v *CEchoRsp) GetStatus() *Status { return &v.Status }
func (v *CEchoRsp) String() string { return messageString(v) }

// CCancelRq represents a C-CANCEL-RQ message. P3.7 9.3.2.3.
type CCancelRq struct {
	MessageIDBeingRespondedTo MessageID
	CommandDataSetType        CommandDataSetType
	Extra                     []*dicom.Element // Unparsed elements
}

func (v *CCancelRq) Encode(e io.Writer) error { return encodeMessage(e, v) }
func (v *CCancelRq) HasData() bool { return v.CommandDataSetType != CommandDataSetTypeNull }
func (v *CCancelRq) CommandField() uint16 { return CommandFieldCCancelRq }
func (v *CCancelRq) GetMessageID() MessageID { return v.MessageIDBeingRespondedTo }
func (v *CCancelRq) GetStatus() *Status { return nil }
func (v *CCancelRq) String() string { return messageString(v) }
