// Package sopclass lists the SOP class UIDs used to fill the
// AffectedSOPClassUID command field.
//
// https://www.dicomlibrary.com/dicom/sop/
package sopclass

import "github.com/grailbio/go-dicom/dicomuid"

// SOPUID is a named SOP class UID.
type SOPUID struct {
	Name string
	UID  string
}

// VerificationClasses is used for issuing C-ECHO.
var VerificationClasses = []SOPUID{
	{"VerificationSOPClass", "1.2.840.10008.1.1"},
}

// StorageClasses is used for issuing C-STORE or C-GET.
var StorageClasses = []SOPUID{
	{"ComputedRadiographyImageStorage", "1.2.840.10008.5.1.4.1.1.1"},
	{"CTImageStorage", "1.2.840.10008.5.1.4.1.1.2"},
	{"EnhancedCTImageStorage", "1.2.840.10008.5.1.4.1.1.2.1"},
	{"UltrasoundMultiframeImageStorage", "1.2.840.10008.5.1.4.1.1.3.1"},
	{"MRImageStorage", "1.2.840.10008.5.1.4.1.1.4"},
	{"EnhancedMRImageStorage", "1.2.840.10008.5.1.4.1.1.4.1"},
	{"UltrasoundImageStorage", "1.2.840.10008.5.1.4.1.1.6.1"},
	{"SecondaryCaptureImageStorage", "1.2.840.10008.5.1.4.1.1.7"},
	{"XRayAngiographicImageStorage", "1.2.840.10008.5.1.4.1.1.12.1"},
	{"NuclearMedicineImageStorage", "1.2.840.10008.5.1.4.1.1.20"},
	{"EncapsulatedPDFStorage", "1.2.840.10008.5.1.4.1.1.104.1"},
	{"PositronEmissionTomographyImageStorage", "1.2.840.10008.5.1.4.1.1.128"},
	{"RTImageStorage", "1.2.840.10008.5.1.4.1.1.481.1"},
	{"RTDoseStorage", "1.2.840.10008.5.1.4.1.1.481.2"},
	{"RTPlanStorage", "1.2.840.10008.5.1.4.1.1.481.5"},
}

// QRFindClasses is used for issuing C-FIND.
var QRFindClasses = []SOPUID{
	{"PatientRootQueryRetrieveInformationModelFind", "1.2.840.10008.5.1.4.1.2.1.1"},
	{"StudyRootQueryRetrieveInformationModelFind", "1.2.840.10008.5.1.4.1.2.2.1"},
	{"PatientStudyOnlyQueryRetrieveInformationModelFind", "1.2.840.10008.5.1.4.1.2.3.1"},
	{"ModalityWorklistInformationFind", "1.2.840.10008.5.1.4.31"},
}

// QRMoveClasses is used for issuing C-MOVE.
var QRMoveClasses = []SOPUID{
	{"PatientRootQueryRetrieveInformationModelMove", "1.2.840.10008.5.1.4.1.2.1.2"},
	{"StudyRootQueryRetrieveInformationModelMove", "1.2.840.10008.5.1.4.1.2.2.2"},
	{"PatientStudyOnlyQueryRetrieveInformationModelMove", "1.2.840.10008.5.1.4.1.2.3.2"},
}

// QRGetClasses is used for issuing C-GET.
var QRGetClasses = []SOPUID{
	{"PatientRootQueryRetrieveInformationModelGet", "1.2.840.10008.5.1.4.1.2.1.3"},
	{"StudyRootQueryRetrieveInformationModelGet", "1.2.840.10008.5.1.4.1.2.2.3"},
	{"PatientStudyOnlyQueryRetrieveInformationModelGet", "1.2.840.10008.5.1.4.1.2.3.3"},
}

var byUID = map[string]SOPUID{}

func init() {
	for _, list := range [][]SOPUID{
		VerificationClasses, StorageClasses, QRFindClasses, QRMoveClasses, QRGetClasses,
	} {
		for _, s := range list {
			byUID[s.UID] = s
		}
	}
}

// FindByUID returns the SOP class for a UID listed in this package.
func FindByUID(uid string) (SOPUID, bool) {
	s, ok := byUID[uid]
	return s, ok
}

// UIDName returns a human-readable name for a SOP class UID, falling back to
// the standard UID dictionary for UIDs not listed here.
func UIDName(uid string) string {
	if s, ok := byUID[uid]; ok {
		return s.Name
	}
	return dicomuid.UIDString(uid)
}
