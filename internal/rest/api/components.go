package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/rest/model"
)

// ListComponents godoc
// @Summary      List machine components
// @Description  List the rotors and reflectors a key sheet may refer to
// @Tags         components
// @Produce      json
// @Success      200  {object}  model.Components
// @Router       /components [get]
func (a *API) ListComponents(c *gin.Context) {
	components, err := a.container.ListComponents.Execute(c)
	if err != nil {
		a.logger.Error().Err(err).Msg("Unable to list components")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, model.NewComponentsFromDomain(components))
}
