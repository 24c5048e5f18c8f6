package mapper

import (
	"chem-synthesis-be/internal/dto"
	"chem-synthesis-be/pkg/synthesis"
)

func ToSynthesisRecordDTO(rec synthesis.Record) dto.SynthesisRecordDTO {
	reagents := rec.Reagents
	if reagents == nil {
		reagents = []string{}
	}

	return dto.SynthesisRecordDTO{
		Reagents:   reagents,
		Conditions: rec.Conditions,
		Time:       rec.Time,
		Temp:       rec.Temp,
		Yield:      rec.Yield,
		Source: dto.SourceInfoDTO{
			Title:    rec.Source.Title,
			Authors:  rec.Source.Authors,
			Journal:  rec.Source.Journal,
			Year:     rec.Source.Year,
			DOI:      rec.Source.DOI,
			PaperURL: rec.Source.PaperURL,
			Summary:  rec.Source.Summary,
		},
	}
}

func ToSynthesisRecordDTOs(records []synthesis.Record) []dto.SynthesisRecordDTO {
	out := make([]dto.SynthesisRecordDTO, len(records))
	for i, rec := range records {
		out[i] = ToSynthesisRecordDTO(rec)
	}
	return out
}
