package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}
	medications := make([]dto.MedicationResponse, 0, len(prescription.Medications))
	for _, m := range prescription.Medications {
		medications = append(medications, dto.MedicationResponse{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Instructions: m.Instructions,
			Quantity:     m.Quantity,
		})
	}
	resp := &dto.PrescriptionResponse{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		PatientID:     prescription.PatientID,
		DoctorID:      prescription.DoctorID,
		Medications:   medications,
		Diagnosis:     prescription.Diagnosis,
		Notes:         prescription.Notes,
		ValidUntil:    prescription.ValidUntil,
		IsActive:      prescription.IsActive,
		CreatedAt:     prescription.CreatedAt,
	}
	if prescription.Doctor != nil {
		resp.DoctorName = prescription.Doctor.FirstName + " " + prescription.Doctor.LastName
	}
	if prescription.Patient != nil {
		resp.PatientName = prescription.Patient.FirstName + " " + prescription.Patient.LastName
	}
	return resp
}

func PrescriptionsToListResponse(prescriptions []entity.Prescription) *dto.PrescriptionListResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return &dto.PrescriptionListResponse{
		Prescriptions: responses,
		Total:         len(responses),
	}
}
