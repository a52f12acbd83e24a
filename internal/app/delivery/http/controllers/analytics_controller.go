package controllers

import (
	"context"
	"net/http"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
}

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase) *AnalyticsController {
	return &AnalyticsController{
		Log:              logger,
		AnalyticsUsecase: analyticsUsecase,
	}
}

func (ctrl *AnalyticsController) Overview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.Overview(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAnalyticsSuccessMessage, result)
}
