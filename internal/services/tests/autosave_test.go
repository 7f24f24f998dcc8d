package services_test

import (
	"sync"
	"testing"
	"time"

	mock_storage "job-email-generator/internal/mocks"
	"job-email-generator/internal/models"
	"job-email-generator/internal/services"
	"job-email-generator/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveReq(name string) *dto.SaveResumeRequest {
	return &dto.SaveResumeRequest{
		PersonalInfo: models.PersonalInfo{FullName: name},
	}
}

func TestAutoSaver_CoalescesRapidEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumeSvc := mock_storage.NewMockResumeService(ctrl)
	saver := services.NewAutoSaver(mockResumeSvc, 100*time.Millisecond)
	defer saver.Stop()

	var mu sync.Mutex
	var savedNames []string
	done := make(chan struct{})

	mockResumeSvc.EXPECT().
		Save(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *dto.SaveResumeRequest) (*models.ResumeData, error) {
			mu.Lock()
			savedNames = append(savedNames, req.PersonalInfo.FullName)
			mu.Unlock()
			close(done)
			return models.NewResumeData(testUserID), nil
		}).Times(1)

	saver.Schedule(testUserID, saveReq("first"))
	time.Sleep(10 * time.Millisecond)
	saver.Schedule(testUserID, saveReq("second"))
	time.Sleep(10 * time.Millisecond)
	saver.Schedule(testUserID, saveReq("third"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save never fired")
	}
	// Give a stray duplicate save a window to fire; Times(1) would catch it
	// at ctrl.Finish anyway.
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, savedNames, 1)
	assert.Equal(t, "third", savedNames[0])
}

func TestAutoSaver_IndependentPerUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumeSvc := mock_storage.NewMockResumeService(ctrl)
	saver := services.NewAutoSaver(mockResumeSvc, 50*time.Millisecond)
	defer saver.Stop()

	var wg sync.WaitGroup
	wg.Add(2)

	mockResumeSvc.EXPECT().
		Save(gomock.Any(), "user-a", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, _ *dto.SaveResumeRequest) (*models.ResumeData, error) {
			wg.Done()
			return models.NewResumeData("user-a"), nil
		}).Times(1)
	mockResumeSvc.EXPECT().
		Save(gomock.Any(), "user-b", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, _ *dto.SaveResumeRequest) (*models.ResumeData, error) {
			wg.Done()
			return models.NewResumeData("user-b"), nil
		}).Times(1)

	saver.Schedule("user-a", saveReq("a"))
	saver.Schedule("user-b", saveReq("b"))

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("per-user saves never fired")
	}
}

func TestAutoSaver_CancelDropsPendingSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumeSvc := mock_storage.NewMockResumeService(ctrl)
	saver := services.NewAutoSaver(mockResumeSvc, 50*time.Millisecond)
	defer saver.Stop()

	// No Save expectation: a fired timer would fail the controller.
	saver.Schedule(testUserID, saveReq("doomed"))
	saver.Cancel(testUserID)

	time.Sleep(120 * time.Millisecond)
}

func TestAutoSaver_DefaultDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResumeSvc := mock_storage.NewMockResumeService(ctrl)
	saver := services.NewAutoSaver(mockResumeSvc, 0)
	defer saver.Stop()

	// Zero delay falls back to the production window, so nothing fires
	// within a short test run.
	saver.Schedule(testUserID, saveReq("later"))
	time.Sleep(50 * time.Millisecond)
	saver.Stop()
}
