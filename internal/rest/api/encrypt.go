package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/encrypttext"
	"github.com/sergeii/enigma/internal/rest/model"
)

// Encrypt godoc
// @Summary      Encrypt text
// @Description  Run text through a machine configured by the key sheet.
// @Description  Decryption is the same operation with the same key sheet.
// @Tags         cipher
// @Accept       json
// @Produce      json
// @Param        request  body      model.EncryptRequest  true  "Key sheet and text"
// @Success      200      {object}  model.EncryptResponse
// @Failure      400      {object}  api.Error
// @Failure      422      {object}  api.Error
// @Router       /encrypt [post]
func (a *API) Encrypt(c *gin.Context) {
	var body model.EncryptRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		a.logger.Debug().Err(err).Msg("Failed to bind encrypt request")
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}

	req := encrypttext.NewRequest(body.Keysheet.ToDomain(), body.Text)
	resp, err := a.container.EncryptText.Execute(c, req)
	if err != nil {
		switch {
		case errors.Is(err, encrypttext.ErrInvalidKeysheet), errors.Is(err, encrypttext.ErrTextTooLong):
			c.JSON(http.StatusUnprocessableEntity, Error{Error: err.Error()})
		default:
			a.logger.Error().Err(err).Msg("Unable to encrypt text")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewEncryptResponseFromDomain(resp))
}
