// Package commandset defines the DICOM command set elements (group 0000)
// used by DIMSE messages. P3.7 E.1.
//
// http://dicom.nema.org/medical/dicom/current/output/pdf/part07.pdf
package commandset

import (
	"fmt"

	"github.com/suyashkumar/dicom/pkg/tag"
)

var (
	CommandGroupLength                   = tag.Tag{Group: 0x0000, Element: 0x0000}
	AffectedSOPClassUID                  = tag.Tag{Group: 0x0000, Element: 0x0002}
	RequestedSOPClassUID                 = tag.Tag{Group: 0x0000, Element: 0x0003}
	CommandField                         = tag.Tag{Group: 0x0000, Element: 0x0100}
	MessageID                            = tag.Tag{Group: 0x0000, Element: 0x0110}
	MessageIDBeingRespondedTo            = tag.Tag{Group: 0x0000, Element: 0x0120}
	MoveDestination                      = tag.Tag{Group: 0x0000, Element: 0x0600}
	Priority                             = tag.Tag{Group: 0x0000, Element: 0x0700}
	CommandDataSetType                   = tag.Tag{Group: 0x0000, Element: 0x0800}
	Status                               = tag.Tag{Group: 0x0000, Element: 0x0900}
	OffendingElement                     = tag.Tag{Group: 0x0000, Element: 0x0901}
	ErrorComment                         = tag.Tag{Group: 0x0000, Element: 0x0902}
	ErrorID                              = tag.Tag{Group: 0x0000, Element: 0x0903}
	AffectedSOPInstanceUID               = tag.Tag{Group: 0x0000, Element: 0x1000}
	RequestedSOPInstanceUID              = tag.Tag{Group: 0x0000, Element: 0x1001}
	NumberOfRemainingSuboperations       = tag.Tag{Group: 0x0000, Element: 0x1020}
	NumberOfCompletedSuboperations       = tag.Tag{Group: 0x0000, Element: 0x1021}
	NumberOfFailedSuboperations          = tag.Tag{Group: 0x0000, Element: 0x1022}
	NumberOfWarningSuboperations         = tag.Tag{Group: 0x0000, Element: 0x1023}
	MoveOriginatorApplicationEntityTitle = tag.Tag{Group: 0x0000, Element: 0x1030}
	MoveOriginatorMessageID              = tag.Tag{Group: 0x0000, Element: 0x1031}
)

// Value representations per P3.7 E.1-1.
var vrs = map[tag.Tag]string{
	CommandGroupLength:                   "UL",
	AffectedSOPClassUID:                  "UI",
	RequestedSOPClassUID:                 "UI",
	CommandField:                         "US",
	MessageID:                            "US",
	MessageIDBeingRespondedTo:            "US",
	MoveDestination:                      "AE",
	Priority:                             "US",
	CommandDataSetType:                   "US",
	Status:                               "US",
	OffendingElement:                     "AT",
	ErrorComment:                         "LO",
	ErrorID:                              "US",
	AffectedSOPInstanceUID:               "UI",
	RequestedSOPInstanceUID:              "UI",
	NumberOfRemainingSuboperations:       "US",
	NumberOfCompletedSuboperations:       "US",
	NumberOfFailedSuboperations:          "US",
	NumberOfWarningSuboperations:         "US",
	MoveOriginatorApplicationEntityTitle: "AE",
	MoveOriginatorMessageID:              "US",
}

// The standard tag dictionary covers data set elements only; the command
// group must be registered before dicom.NewElement or the implicit VR reader
// can resolve these tags.
func init() {
	for t, vr := range vrs {
		vm := "1"
		if t == OffendingElement {
			vm = "1-n"
		}
		info := tag.Info{Tag: t, VRs: []string{vr}, Name: names[t], Keyword: names[t], VM: vm}
		if err := tag.Add(info, true); err != nil {
			panic(err)
		}
	}
}

var names = map[tag.Tag]string{
	CommandGroupLength:                   "CommandGroupLength",
	AffectedSOPClassUID:                  "AffectedSOPClassUID",
	RequestedSOPClassUID:                 "RequestedSOPClassUID",
	CommandField:                         "CommandField",
	MessageID:                            "MessageID",
	MessageIDBeingRespondedTo:            "MessageIDBeingRespondedTo",
	MoveDestination:                      "MoveDestination",
	Priority:                             "Priority",
	CommandDataSetType:                   "CommandDataSetType",
	Status:                               "Status",
	OffendingElement:                     "OffendingElement",
	ErrorComment:                         "ErrorComment",
	ErrorID:                              "ErrorID",
	AffectedSOPInstanceUID:               "AffectedSOPInstanceUID",
	RequestedSOPInstanceUID:              "RequestedSOPInstanceUID",
	NumberOfRemainingSuboperations:       "NumberOfRemainingSuboperations",
	NumberOfCompletedSuboperations:       "NumberOfCompletedSuboperations",
	NumberOfFailedSuboperations:          "NumberOfFailedSuboperations",
	NumberOfWarningSuboperations:         "NumberOfWarningSuboperations",
	MoveOriginatorApplicationEntityTitle: "MoveOriginatorApplicationEntityTitle",
	MoveOriginatorMessageID:              "MoveOriginatorMessageID",
}

// Name returns the standard keyword for a command set tag, or a
// "(gggg,eeee)" form for tags outside the command group dictionary.
func Name(t tag.Tag) string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("(%04x,%04x)", t.Group, t.Element)
}
