package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

func MedicalReportToResponse(report *entity.MedicalReport) *dto.MedicalReportResponse {
	if report == nil {
		return nil
	}
	resp := &dto.MedicalReportResponse{
		ID:                 report.ID,
		PatientID:          report.PatientID,
		Title:              report.Title,
		Description:        report.Description,
		ReportType:         report.ReportType,
		FileURL:            report.FileURL,
		FileName:           report.FileName,
		FileSize:           report.FileSize,
		ReportDate:         report.ReportDate,
		SharedWithDoctorID: report.SharedWithDoctorID,
		CreatedAt:          report.CreatedAt,
	}
	if report.Patient != nil {
		resp.PatientName = report.Patient.FirstName + " " + report.Patient.LastName
	}
	return resp
}

func MedicalReportsToListResponse(reports []entity.MedicalReport) *dto.MedicalReportListResponse {
	responses := make([]dto.MedicalReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *MedicalReportToResponse(&reports[i]))
	}
	return &dto.MedicalReportListResponse{
		Reports: responses,
		Total:   len(responses),
	}
}
