package handlers

import (
	"net/http"

	"job-email-generator/internal/suggest"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler proxies autocomplete lookups to the upstream suggestion
// APIs. All endpoints degrade to canned lists instead of failing, so every
// response here is a 200.
type SuggestionHandler struct {
	skills       *suggest.SkillsClient
	universities *suggest.UniversityClient
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(skills *suggest.SkillsClient, universities *suggest.UniversityClient) *SuggestionHandler {
	return &SuggestionHandler{skills: skills, universities: universities}
}

// GetPositions godoc
// @Summary      Suggest job positions
// @Description  Returns up to ten position titles matching the query.
// @Tags         suggestions
// @Produce      json
// @Param        q  query  string  true  "Search text"
// @Success      200  {object}  map[string][]string "Matching positions"
// @Router       /suggestions/positions [get]
func (h *SuggestionHandler) GetPositions(c *gin.Context) {
	positions := h.skills.Positions(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"suggestions": positions})
}

// GetSkills godoc
// @Summary      Skills for a position
// @Description  Returns the skill list associated with a position title.
// @Tags         suggestions
// @Produce      json
// @Param        position  path  string  true  "Position title"
// @Success      200  {object}  map[string]interface{} "Position and its skills"
// @Router       /suggestions/skills/{position} [get]
func (h *SuggestionHandler) GetSkills(c *gin.Context) {
	position := c.Param("position")
	skills := h.skills.SkillsForPosition(c.Request.Context(), position)
	c.JSON(http.StatusOK, gin.H{"position": position, "skills": skills})
}

// GetDegrees godoc
// @Summary      Suggest degrees
// @Description  Returns up to ten degree names matching the query. An empty query yields the most common degrees.
// @Tags         suggestions
// @Produce      json
// @Param        q  query  string  false  "Search text"
// @Success      200  {object}  map[string][]string "Matching degrees"
// @Router       /suggestions/degrees [get]
func (h *SuggestionHandler) GetDegrees(c *gin.Context) {
	degrees := h.skills.Degrees(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"degrees": degrees})
}

// SearchUniversities godoc
// @Summary      Search universities
// @Description  Searches the public university dataset, local institutes first. Queries under two characters yield nothing.
// @Tags         suggestions
// @Produce      json
// @Param        q        query  string  true   "Search text"
// @Param        country  query  string  false  "Restrict to one country"
// @Success      200  {object}  map[string][]suggest.University "Matching universities"
// @Router       /suggestions/universities [get]
func (h *SuggestionHandler) SearchUniversities(c *gin.Context) {
	query := c.Query("q")
	country := c.Query("country")

	var results []suggest.University
	if country != "" {
		results = h.universities.SearchByCountry(c.Request.Context(), query, country)
	} else {
		results = h.universities.Search(c.Request.Context(), query)
	}
	c.JSON(http.StatusOK, gin.H{"universities": results})
}
