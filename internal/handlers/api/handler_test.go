package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hexhaus/dicehall/internal/dice"
	"github.com/hexhaus/dicehall/internal/models"
	rollRepo "github.com/hexhaus/dicehall/internal/repositories/roll"
	rollService "github.com/hexhaus/dicehall/internal/services/roll"
	serviceMocks "github.com/hexhaus/dicehall/internal/services/roll/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *serviceMocks.MockService
	router      http.Handler

	testID models.RollId
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = serviceMocks.NewMockService(s.mockCtrl)

	handler, err := New(&Config{RollService: s.mockService})
	s.Require().NoError(err)
	s.router = handler.Routes()

	s.testID = models.RollIdFromUUID(uuid.Must(uuid.NewV7()))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) postRoll(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rolls", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) getRoll(id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rolls/"+id, nil)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestRollDices() {
	results := dice.NewRolledDiceSet([]dice.RolledDice{
		dice.NewRolledDice(dice.D100, 42),
		dice.NewRolledDice(dice.D20, 20),
		dice.NewRolledDice(dice.D20, 3),
	})

	s.mockService.EXPECT().
		RollDices(gomock.Any(), &rollService.RollDicesInput{
			DiceSet: dice.NewDiceSet(dice.D100, dice.D20, dice.D20),
		}).
		Return(&rollService.RollDicesOutput{RollID: s.testID, Results: results}, nil)

	recorder := s.postRoll(`{"dices": "d100 + 2d20"}`)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp rollResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))

	s.Equal(s.testID.String(), resp.ID)
	s.Equal(uint32(65), resp.Total)
	s.Require().Len(resp.Dices, 3)
	s.Equal(rolledDieResponse{Dice: "d100", Result: 42}, resp.Dices[0])
	s.Equal(rolledDieResponse{Dice: "d20", Result: 20}, resp.Dices[1])
	s.Equal(rolledDieResponse{Dice: "d20", Result: 3}, resp.Dices[2])
}

func (s *HandlerTestSuite) TestRollDicesBadNotation() {
	recorder := s.postRoll(`{"dices": "D100"}`)
	s.Equal(http.StatusBadRequest, recorder.Code)

	recorder = s.postRoll(`{"dices": "2d7"}`)
	s.Equal(http.StatusBadRequest, recorder.Code)

	recorder = s.postRoll(`{not json`)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestRollDicesOverflow() {
	s.mockService.EXPECT().
		RollDices(gomock.Any(), gomock.Any()).
		Return(nil, dice.ErrWayTooManyDices)

	recorder := s.postRoll(`{"dices": "d20"}`)
	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (s *HandlerTestSuite) TestRollDicesStorageFailure() {
	s.mockService.EXPECT().
		RollDices(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("storage exploded"))

	recorder := s.postRoll(`{"dices": "d20"}`)
	s.Equal(http.StatusInternalServerError, recorder.Code)

	// Adapter failures stay opaque
	s.NotContains(recorder.Body.String(), "exploded")
}

func (s *HandlerTestSuite) TestGetDiceRoll() {
	results := dice.NewRolledDiceSet([]dice.RolledDice{
		dice.NewRolledDice(dice.D20, 17),
	})

	s.mockService.EXPECT().
		GetDiceRoll(gomock.Any(), &rollService.GetDiceRollInput{RollID: s.testID}).
		Return(&rollService.GetDiceRollOutput{RollID: s.testID, Results: results}, nil)

	recorder := s.getRoll(s.testID.String())
	s.Require().Equal(http.StatusOK, recorder.Code)

	var resp rollResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp))
	s.Equal(s.testID.String(), resp.ID)
	s.Equal(uint32(17), resp.Total)
}

func (s *HandlerTestSuite) TestGetDiceRollBadId() {
	recorder := s.getRoll("not-a-uuid")
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *HandlerTestSuite) TestGetDiceRollNotFound() {
	s.mockService.EXPECT().
		GetDiceRoll(gomock.Any(), gomock.Any()).
		Return(nil, rollRepo.ErrRollNotFound)

	recorder := s.getRoll(s.testID.String())
	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestHealthz() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), "ok")
}

func (s *HandlerTestSuite) TestEmptyRollRendersEmptyDiceList() {
	s.mockService.EXPECT().
		GetDiceRoll(gomock.Any(), gomock.Any()).
		Return(&rollService.GetDiceRollOutput{
			RollID:  s.testID,
			Results: dice.NewRolledDiceSet(nil),
		}, nil)

	recorder := s.getRoll(s.testID.String())
	s.Require().Equal(http.StatusOK, recorder.Code)

	expected := fmt.Sprintf(`{"id":%q,"dices":[],"total":0}`, s.testID)
	s.JSONEq(expected, recorder.Body.String())
}
