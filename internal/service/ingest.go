package service

import (
	"time"

	"bnihub.com/chaptertracker/internal/excel"
	"bnihub.com/chaptertracker/internal/model"
	"github.com/sirupsen/logrus"
)

// batchStamp holds the per-upload values shared by every row of a batch.
type batchStamp struct {
	ActivityDate time.Time
	WeekNumber   int
	Year         int
	UploadedBy   string
}

// buildActivityBatch runs normalize → validate → coerce → resolve over the
// parsed rows and returns the insertable set. Row failures drop the row and
// are logged; they never abort the batch.
func buildActivityBatch(rows []excel.Row, mappings []excel.ColumnMapping, fallback map[string]string, roster Roster, stamp batchStamp) ([]*model.Activity, int) {
	activities := make([]*model.Activity, 0, len(rows))
	dropped := 0

	for i, row := range rows {
		rec := excel.ApplyMapping(row, mappings, fallback)

		valid, reasons := excel.ValidateActivityRecord(rec)
		if !valid {
			dropped++
			logrus.WithFields(logrus.Fields{
				"row":     i + 2,
				"reasons": reasons,
			}).Warn("activity row failed validation, dropping")
			continue
		}

		ref, ok := roster.Resolve(rec[excel.FieldMemberName])
		if !ok {
			dropped++
			logrus.WithFields(logrus.Fields{
				"row":    i + 2,
				"member": rec[excel.FieldMemberName],
			}).Warn("member not found in roster, dropping row")
			continue
		}

		activity := &model.Activity{
			MemberID:           ref.ID,
			PhoneID:            ref.PhoneID,
			MemberName:         ref.Name,
			ActivityDate:       stamp.ActivityDate,
			WeekNumber:         stamp.WeekNumber,
			Year:               stamp.Year,
			Attendance:         rec[excel.FieldAttendance],
			ProvideInsideRef:   excel.ParseCount(rec[excel.FieldProvideInsideRef]),
			ProvideOutsideRef:  excel.ParseCount(rec[excel.FieldProvideOutsideRef]),
			ReceivedInsideRef:  excel.ParseCount(rec[excel.FieldReceivedInsideRef]),
			ReceivedOutsideRef: excel.ParseCount(rec[excel.FieldReceivedOutsideRef]),
			Visitors:           excel.ParseCount(rec[excel.FieldVisitors]),
			OneToOneVisit:      excel.ParseCount(rec[excel.FieldOneToOneVisit]),
			TYFCB:              excel.ParseAmount(rec[excel.FieldTYFCB]),
			CEU:                excel.ParseCount(rec[excel.FieldCEU]),
			UploadedBy:         stamp.UploadedBy,
		}
		if identity := rec[excel.FieldIdentity]; identity != "" {
			activity.Identity = &identity
		}

		activities = append(activities, activity)
	}

	return activities, dropped
}
