//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
	"github.com/rios0rios0/zkvtools/internal/infrastructure/controllers"
	"github.com/rios0rios0/zkvtools/test/domain/commanddoubles"
)

func TestProfileController(t *testing.T) {
	t.Parallel()

	t.Run("should pass token and flags and write records to stdout", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubProfileCommand{Output: "Run_Id;Run_Number;Job_Id;Total_Seconds\n"}
		ctrl := controllers.NewProfileController(stub, entities.ConfigSearch{})
		config := writeConfig(t, "{}\n")

		// when
		out, err := runController(t, ctrl, "", "ghp_token", "--config", config,
			"--owner", "me", "--repository", "proj", "--stop-after-processed", "3", "--skip", "2",
			"--jobs-to-profile", "build", "--jobs-to-profile", "lint")

		// then
		require.NoError(t, err)
		assert.Equal(t, "Run_Id;Run_Number;Job_Id;Total_Seconds\n", out)
		assert.Equal(t, "ghp_token", stub.LastOpts.Token)
		assert.Equal(t, "me", stub.LastOpts.Owner)
		assert.Equal(t, "proj", stub.LastOpts.Repository)
		assert.Equal(t, 3, stub.LastOpts.StopAfterProcessed)
		assert.Equal(t, 2, stub.LastOpts.Skip)
		assert.Equal(t, []string{"build", "lint"}, stub.LastOpts.Jobs)
	})

	t.Run("should use defaults without flags", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubProfileCommand{}
		ctrl := controllers.NewProfileController(stub, entities.ConfigSearch{})
		config := writeConfig(t, "{}\n")

		// when
		_, err := runController(t, ctrl, "", "--config", config)

		// then
		require.NoError(t, err)
		assert.Empty(t, stub.LastOpts.Token)
		assert.Equal(t, entities.DefaultStopAfterProcessed, stub.LastOpts.StopAfterProcessed)
		assert.Equal(t, 0, stub.LastOpts.Skip)
		assert.Empty(t, stub.LastOpts.Jobs)
		assert.Equal(t, entities.DefaultJobsToProfile(), stub.LastSettings.Profile.Jobs)
	})
}
