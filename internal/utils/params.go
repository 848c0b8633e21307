package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetTaskID(ctx *gin.Context) (uint, error) {
	var err error

	taskIDStr := ctx.Param("id")

	if taskIDStr == "" {
		return 0, errors.New("Task ID not found")
	}

	taskID, err := strconv.ParseUint(taskIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Task ID")
	}

	return uint(taskID), nil
}
