package service_test

import (
	"context"
	"testing"

	"academicHub/internal/domain"
	"academicHub/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formTeamWithGuide проводит заявку до ожидания решения руководителя
func formTeamWithGuide(t *testing.T, f *fixture) (*domain.Project, *domain.TeamRequest) {
	t.Helper()
	project := f.createProject(t, int64Ptr(guideID))
	req := f.createRequest(t, project.ID, member1ID, member2ID)
	for _, id := range []int64{member1ID, member2ID, leaderID} {
		f.reply(t, req.ID, id, domain.MemberReplyAccepted)
	}
	return project, req
}

func TestDecideGuideAssignment_RejectKeepsTeam(t *testing.T) {
	// Arrange
	f := newFixture(t)
	project, req := formTeamWithGuide(t, f)

	// Act
	result, err := f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
		RequestID: req.ID,
		GuideID:   guideID,
		Decision:  domain.GuideDecisionReject,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.GuideAssignmentRejected, result.Assignment.Status)
	assert.Equal(t, domain.ProjectStatusRejected, result.Project.Status)
	assert.Equal(t, domain.GuideStatusRejected, result.Project.GuideStatus)
	assert.Equal(t, domain.GuideStageRejected, result.Request.GuideStage)
	assert.Equal(t, domain.TeamRequestStatusAccepted, result.Request.Status)

	teams := f.store.Teams(project.ID)
	require.Len(t, teams, 1)
	assert.Len(t, teams[0].Members, 3)

	event := f.pub.last()
	assert.Equal(t, notify.EventGuideDecided, event.Type)
	assert.Equal(t, string(domain.GuideAssignmentRejected), event.Status)
	assert.ElementsMatch(t, []int64{leaderID, member1ID, member2ID}, event.Recipients)
}

func TestDecideGuideAssignment_SecondDecisionRefused(t *testing.T) {
	// Arrange
	f := newFixture(t)
	_, req := formTeamWithGuide(t, f)
	_, err := f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
		RequestID: req.ID,
		GuideID:   guideID,
		Decision:  domain.GuideDecisionApprove,
	})
	require.NoError(t, err)

	// Act
	_, err = f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
		RequestID: req.ID,
		GuideID:   guideID,
		Decision:  domain.GuideDecisionReject,
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestDecideGuideAssignment_Errors(t *testing.T) {
	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
			RequestID: 42,
			GuideID:   guideID,
			Decision:  domain.GuideDecisionApprove,
		})

		assert.ErrorIs(t, err, domain.ErrResourceNotFound)
	})

	t.Run("request still pending", func(t *testing.T) {
		f := newFixture(t)
		project := f.createProject(t, int64Ptr(guideID))
		req := f.createRequest(t, project.ID, member1ID)

		_, err := f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
			RequestID: req.ID,
			GuideID:   guideID,
			Decision:  domain.GuideDecisionApprove,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("request without guide", func(t *testing.T) {
		f := newFixture(t)
		project := f.createProject(t, nil)
		req := f.createRequest(t, project.ID, member1ID)
		f.reply(t, req.ID, member1ID, domain.MemberReplyAccepted)
		f.reply(t, req.ID, leaderID, domain.MemberReplyAccepted)

		_, err := f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
			RequestID: req.ID,
			GuideID:   guideID,
			Decision:  domain.GuideDecisionApprove,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("another guide", func(t *testing.T) {
		f := newFixture(t)
		project, req := formTeamWithGuide(t, f)

		_, err := f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
			RequestID: req.ID,
			GuideID:   otherGuideID,
			Decision:  domain.GuideDecisionApprove,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidState)
		stored, _ := f.store.Project(project.ID)
		assert.Equal(t, domain.ProjectStatusPending, stored.Status)
	})

	t.Run("unknown decision", func(t *testing.T) {
		f := newFixture(t)
		_, req := formTeamWithGuide(t, f)

		_, err := f.svc.DecideGuideAssignment(context.Background(), &domain.GuideDecisionInput{
			RequestID: req.ID,
			GuideID:   guideID,
			Decision:  "defer",
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestListGuideAssignments(t *testing.T) {
	// Arrange
	f := newFixture(t)
	project, _ := formTeamWithGuide(t, f)

	// Act
	views, err := f.svc.ListGuideAssignments(context.Background(), guideID)
	require.NoError(t, err)
	empty, err := f.svc.ListGuideAssignments(context.Background(), otherGuideID)
	require.NoError(t, err)
	_, unknownErr := f.svc.ListGuideAssignments(context.Background(), leaderID)

	// Assert
	require.Len(t, views, 1)
	assert.Equal(t, project.ID, views[0].ProjectID)
	assert.Equal(t, "Smart Campus", views[0].ProjectTitle)
	assert.Equal(t, "Team X", views[0].TeamName)
	assert.Equal(t, "Student 1", views[0].CreatedByName)
	assert.Equal(t, domain.GuideAssignmentPending, views[0].Status)
	assert.Empty(t, empty)
	assert.ErrorIs(t, unknownErr, domain.ErrResourceNotFound)
}

func TestListAvailableGuides(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.store.AddFaculty(domain.Faculty{UserID: 12, Name: "Dr. Ahmed", DeptID: deptCSE})

	// Act
	guides, err := f.svc.ListAvailableGuides(context.Background(), deptCSE)

	// Assert
	require.NoError(t, err)
	require.Len(t, guides, 2)
	assert.Equal(t, "Dr. Ahmed", guides[0].Name)
	assert.Equal(t, "Dr. Rao", guides[1].Name)
}
