package echoscribe

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/mudler/echoscribe/core/backend"
	"github.com/mudler/echoscribe/core/schema"
	"github.com/mudler/echoscribe/core/services"
)

// ProcessVideoEndpoint runs the whole pipeline for the submitted URL and
// returns the speaker-attributed transcript, the summary and the narration
// file name.
//
//	@Summary	Process a video URL into a diarized transcript, summary and narrated summary.
//	@Param		request	body	schema.ProcessVideoRequest	true	"query params"
//	@Success	200	{object}	schema.ProcessVideoResponse	"Response"
//	@Router		/process-video/ [post]
func ProcessVideoEndpoint(processor services.Processor) echo.HandlerFunc {
	return func(c echo.Context) error {
		input := new(schema.ProcessVideoRequest)

		if err := c.Bind(input); err != nil {
			log.Error().Err(err).Msg("error during body binding")
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}

		if err := validateURL(input.URL); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}

		result, err := processor.Process(c.Request().Context(), input.URL)
		if err != nil {
			var fetchErr *backend.FetchError
			if errors.As(err, &fetchErr) {
				// Download/extraction/denoise problems get the structured
				// message the client shows the user. Later stage failures
				// deliberately fall through to the generic error handler.
				return echo.NewHTTPError(http.StatusInternalServerError,
					fmt.Sprintf("Error during audio prep: %s", fetchErr.Unwrap().Error()))
			}
			return err
		}

		return c.JSON(http.StatusOK, schema.ProcessVideoResponse{
			Message:              "Processing completed successfully.",
			Summary:              result.Summary,
			SummaryAudioFilename: result.SummaryAudioFilename,
			DiarizedTranscript:   result.DiarizedTranscript,
		})
	}
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("url is not valid: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("url must have a host")
	}
	return nil
}
