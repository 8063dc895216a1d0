package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/randomizekeysheet"
	"github.com/sergeii/enigma/internal/rest/model"
)

type randomKeysheetQuery struct {
	Seed string `form:"seed"`
}

// RandomKeysheet godoc
// @Summary      Random key sheet
// @Description  Generate a random key sheet. The same seed always yields the same key sheet.
// @Tags         keysheets
// @Produce      json
// @Param        seed  query     string  false  "Unsigned 64-bit seed"
// @Success      200   {object}  model.RandomKeysheet
// @Failure      400   {object}  api.Error
// @Router       /keysheets/random [get]
func (a *API) RandomKeysheet(c *gin.Context) {
	var query randomKeysheetQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}

	req := randomizekeysheet.NewRequest()
	if query.Seed != "" {
		seed, err := strconv.ParseUint(query.Seed, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, Error{Error: "seed must be an unsigned 64-bit integer"})
			return
		}
		req = randomizekeysheet.NewSeededRequest(seed)
	}

	resp, err := a.container.RandomizeKeysheet.Execute(c, req)
	if err != nil {
		a.logger.Error().Err(err).Msg("Unable to generate random key sheet")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.NewRandomKeysheetFromDomain(resp))
}
