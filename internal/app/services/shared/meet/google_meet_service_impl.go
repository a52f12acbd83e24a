package meet

import (
	"context"
	"fmt"
	"sync"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type googleMeetService struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	googleMeetServiceInstance contracts.MeetService
	onceGoogleMeetService     sync.Once
)

func NewGoogleMeetService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MeetService {
	onceGoogleMeetService.Do(func() {
		googleMeetServiceInstance = &googleMeetService{
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return googleMeetServiceInstance
}

// CreateMeeting returns a placeholder Meet link derived from the appointment
// ID. The Calendar API integration needs OAuth consent from each professional,
// so until that flow ships every settlement gets a deterministic mock room.
func (s *googleMeetService) CreateMeeting(ctx context.Context, appointment *models.Appointment, professional *models.Professional) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	link := fmt.Sprintf("https://meet.google.com/mock-%s", utils.GenerateMeetCode(appointment.ID))

	s.Log.Info("googleMeetService.CreateMeeting succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingMeetingLinkKey, link),
	)
	return link, nil
}
