package v15

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobom/cyclonedx/cyclonedx/model"
	"github.com/gobom/cyclonedx/cyclonedx/spec"
)

func testFormula() model.Formula {
	formulaRef := "formula-1"
	workflowName := model.NewNormalizedString("release")
	taskName := model.NewNormalizedString("compile")
	triggerName := model.NewNormalizedString("push")
	stepName := model.NewNormalizedString("go build")
	executed := model.NewNormalizedString("make release")
	workspaceName := model.NewNormalizedString("checkout")
	accessMode := model.AccessModeReadWrite
	mountPath := model.NewNormalizedString("/workspace")
	timeStart := model.DateTimeUnchecked("2024-03-01T10:00:00Z")
	resourceRef := "pkg:golang/example.com/app@v1.0.0"

	return model.Formula{
		BomRef: &formulaRef,
		Workflows: []model.Workflow{
			{
				BomRef: "workflow-1",
				UID:    "uid-workflow-1",
				Name:   &workflowName,
				ResourceReferences: model.ResourceReferences{
					{Ref: &resourceRef},
				},
				TaskTypes: []model.TaskType{model.TaskTypeBuild, model.TaskTypeTest},
				Trigger: &model.Trigger{
					BomRef:      "trigger-1",
					UID:         "uid-trigger-1",
					Name:        &triggerName,
					TriggerType: model.TriggerTypeWebhook,
				},
				Tasks: []model.Task{
					{
						BomRef:    "task-1",
						UID:       "uid-task-1",
						Name:      &taskName,
						TaskTypes: []model.TaskType{model.TaskTypeBuild},
						Steps: []model.Step{
							{
								Name: &stepName,
								Commands: []model.Command{
									{Executed: &executed},
								},
							},
						},
					},
				},
				TaskDependencies: model.Dependencies{
					{Ref: "task-1"},
				},
				TimeStart: &timeStart,
				Workspaces: []model.Workspace{
					{
						BomRef:     "workspace-1",
						UID:        "uid-workspace-1",
						Name:       &workspaceName,
						AccessMode: &accessMode,
						MountPath:  &mountPath,
					},
				},
			},
		},
	}
}

func testBom() model.Bom {
	serial := model.UrnUUIDUnchecked("urn:uuid:3e671687-395b-41f5-a30f-a58921a69b79")
	phase := model.LifecycleBuild
	customName := model.NewNormalizedString("security-review")

	modelRef := "model-1"
	approach := model.ApproachSupervised
	task := model.NewNormalizedString("classification")
	ml := model.NewComponent(model.ClassificationMachineLearningModel, "fraud-detector", "2.1.0")
	ml.ModelCard = &model.ModelCard{
		BomRef: &modelRef,
		ModelParameters: &model.ModelParameters{
			Approach: &approach,
			Task:     &task,
		},
	}

	dataRef := "data-1"
	dataName := model.NewNormalizedString("training-set")
	classification := model.NewNormalizedString("internal")
	data := model.NewComponent(model.ClassificationData, "training-set", "2024.1")
	data.Data = &model.ComponentData{
		BomRef:         &dataRef,
		DataType:       model.DataTypeDataset,
		Name:           &dataName,
		Classification: &classification,
	}

	components := model.Components{ml, data}
	return model.Bom{
		SpecVersion:  spec.V1_5,
		Version:      1,
		SerialNumber: &serial,
		Metadata: &model.Metadata{
			Lifecycles: []model.Lifecycle{
				{Phase: &phase},
				{Name: &customName},
			},
		},
		Components:  &components,
		Formulation: model.Formulation{testFormula()},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(original, &buffer))

	output := buffer.String()
	assert.Contains(t, output, `"specVersion":"1.5"`)
	assert.Contains(t, output, `"lifecycles"`)
	assert.Contains(t, output, `"formulation"`)
	assert.Contains(t, output, `"modelCard"`)

	parsed, err := ReadJSON(strings.NewReader(output))
	require.NoError(t, err)

	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Errorf("document changed across a JSON round trip (-original +parsed):\n%s", diff)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteXML(original, &buffer))

	output := buffer.String()
	assert.Contains(t, output, `xmlns="http://cyclonedx.org/schema/bom/1.5"`)

	parsed, err := ReadXML(strings.NewReader(output))
	require.NoError(t, err)

	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Errorf("document changed across an XML round trip (-original +parsed):\n%s", diff)
	}
}

func TestLifecyclesSupportPredefinedAndCustomPhases(t *testing.T) {
	input := `{"bomFormat":"CycloneDX","specVersion":"1.5","version":1,` +
		`"metadata":{"lifecycles":[{"phase":"build"},{"name":"security-review","description":"internal audit gate"}]}}`

	bom, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)

	require.NotNil(t, bom.Metadata)
	require.Len(t, bom.Metadata.Lifecycles, 2)
	require.NotNil(t, bom.Metadata.Lifecycles[0].Phase)
	assert.Equal(t, model.LifecycleBuild, *bom.Metadata.Lifecycles[0].Phase)
	assert.Nil(t, bom.Metadata.Lifecycles[1].Phase)
	require.NotNil(t, bom.Metadata.Lifecycles[1].Name)
	assert.Equal(t, "security-review", bom.Metadata.Lifecycles[1].Name.String())
}

func TestUnknownLifecyclePhaseSurvivesAndFailsValidation(t *testing.T) {
	input := `{"bomFormat":"CycloneDX","specVersion":"1.5","version":1,` +
		`"metadata":{"lifecycles":[{"phase":"post-mortem"}]}}`

	bom, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)

	require.NotNil(t, bom.Metadata)
	require.Len(t, bom.Metadata.Lifecycles, 1)
	require.NotNil(t, bom.Metadata.Lifecycles[0].Phase)
	assert.Equal(t, model.LifecyclePhase("post-mortem"), *bom.Metadata.Lifecycles[0].Phase)

	result := bom.Validate()
	require.False(t, result.Passed())
	reason := result.Reasons()[0]
	assert.Equal(t, "Unknown LifecyclePhase found", reason.Message)
	assert.Equal(t, "metadata.lifecycles[0].phase", reason.Context.String())
}

func TestFormulationXMLStructure(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteXML(original, &buffer))

	output := buffer.String()
	assert.Contains(t, output, "<formulation>")
	assert.Contains(t, output, `<formula bom-ref="formula-1">`)
	assert.Contains(t, output, "<workflows>")
	assert.Contains(t, output, "<taskType>build</taskType>")
	assert.Contains(t, output, "<trigger")
	assert.Contains(t, output, "<workspace")
}

func TestComponentDataRoundTrip(t *testing.T) {
	original := testBom()

	var buffer bytes.Buffer
	require.NoError(t, WriteJSON(original, &buffer))

	parsed, err := ReadJSON(&buffer)
	require.NoError(t, err)

	require.NotNil(t, parsed.Components)
	data := (*parsed.Components)[1].Data
	require.NotNil(t, data)
	assert.Equal(t, model.DataTypeDataset, data.DataType)
	require.NotNil(t, data.Name)
	assert.Equal(t, "training-set", data.Name.String())
}
