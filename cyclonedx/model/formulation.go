package model

import (
	"github.com/gobom/cyclonedx/cyclonedx/spec"
	"github.com/gobom/cyclonedx/cyclonedx/validate"
)

// ResourceReference points at a resource either by bom-ref or by an
// external reference. Exactly one of the fields is set.
type ResourceReference struct {
	Ref               *string
	ExternalReference *ExternalReference
}

func (r ResourceReference) Validate(version spec.Version, ctx validate.Context) validate.Result {
	if r.ExternalReference != nil {
		return r.ExternalReference.Validate(version, ctx.Extend(validate.Struct("ResourceReference", "external_reference")))
	}
	return validate.Pass()
}

// ResourceReferences is a list of resource references.
type ResourceReferences []ResourceReference

func (r ResourceReferences) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, ref := range r {
		result = result.Merge(ref.Validate(version, ctx.Extend(validate.Struct("ResourceReferences", "inner"), validate.Array(i))))
	}
	return result
}

// TaskType is the closed vocabulary of workflow task kinds.
type TaskType string

const (
	TaskTypeCopy    TaskType = "copy"
	TaskTypeClone   TaskType = "clone"
	TaskTypeLint    TaskType = "lint"
	TaskTypeScan    TaskType = "scan"
	TaskTypeMerge   TaskType = "merge"
	TaskTypeBuild   TaskType = "build"
	TaskTypeTest    TaskType = "test"
	TaskTypeDeliver TaskType = "deliver"
	TaskTypeDeploy  TaskType = "deploy"
	TaskTypeRelease TaskType = "release"
	TaskTypeClean   TaskType = "clean"
	TaskTypeOther   TaskType = "other"
)

func (t TaskType) WellKnown() bool {
	switch t {
	case TaskTypeCopy, TaskTypeClone, TaskTypeLint, TaskTypeScan, TaskTypeMerge,
		TaskTypeBuild, TaskTypeTest, TaskTypeDeliver, TaskTypeDeploy,
		TaskTypeRelease, TaskTypeClean, TaskTypeOther:
		return true
	}
	return false
}

func (t TaskType) String() string {
	return string(t)
}

func (t TaskType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !t.WellKnown() {
		return validate.FailUnknown("TaskType", ctx)
	}
	return validate.Pass()
}

// EnvironmentVar is a name/value pair exposed to a workflow.
type EnvironmentVar struct {
	Name  string
	Value NormalizedString
}

// Command is one command executed by a step.
type Command struct {
	Executed   *NormalizedString
	Properties Properties
}

// Step is one unit of work inside a task.
type Step struct {
	Name        *NormalizedString
	Description *NormalizedString
	Commands    []Command
	Properties  Properties
}

func (s Step) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if s.Name != nil {
		result = result.Merge(s.Name.Validate(version, ctx.Extend(validate.Struct("Step", "name"))))
	}
	if s.Description != nil {
		result = result.Merge(s.Description.Validate(version, ctx.Extend(validate.Struct("Step", "description"))))
	}
	if len(s.Properties) > 0 {
		result = result.Merge(s.Properties.Validate(version, ctx.Extend(validate.Struct("Step", "properties"))))
	}
	return result
}

// TriggerType is the closed vocabulary of trigger kinds.
type TriggerType string

const (
	TriggerTypeManual    TriggerType = "manual"
	TriggerTypeAPI       TriggerType = "api"
	TriggerTypeWebhook   TriggerType = "webhook"
	TriggerTypeScheduled TriggerType = "scheduled"
)

func (t TriggerType) WellKnown() bool {
	switch t {
	case TriggerTypeManual, TriggerTypeAPI, TriggerTypeWebhook, TriggerTypeScheduled:
		return true
	}
	return false
}

func (t TriggerType) String() string {
	return string(t)
}

func (t TriggerType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !t.WellKnown() {
		return validate.FailUnknown("TriggerType", ctx)
	}
	return validate.Pass()
}

// Trigger describes what starts a workflow or task.
type Trigger struct {
	BomRef             string
	UID                string
	Name               *NormalizedString
	Description        *NormalizedString
	ResourceReferences ResourceReferences
	TriggerType        TriggerType
	TimeActivated      *DateTime
	Inputs             []Input
	Outputs            []Output
	Properties         Properties
}

func (t Trigger) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := t.TriggerType.Validate(version, ctx.Extend(validate.Struct("Trigger", "trigger_type")))
	if t.Name != nil {
		result = result.Merge(t.Name.Validate(version, ctx.Extend(validate.Struct("Trigger", "name"))))
	}
	if t.Description != nil {
		result = result.Merge(t.Description.Validate(version, ctx.Extend(validate.Struct("Trigger", "description"))))
	}
	if len(t.ResourceReferences) > 0 {
		result = result.Merge(t.ResourceReferences.Validate(version, ctx.Extend(validate.Struct("Trigger", "resource_references"))))
	}
	if t.TimeActivated != nil {
		result = result.Merge(t.TimeActivated.Validate(version, ctx.Extend(validate.Struct("Trigger", "time_activated"))))
	}
	for i, input := range t.Inputs {
		result = result.Merge(input.Validate(version, ctx.Extend(validate.Struct("Trigger", "inputs"), validate.Array(i))))
	}
	for i, output := range t.Outputs {
		result = result.Merge(output.Validate(version, ctx.Extend(validate.Struct("Trigger", "outputs"), validate.Array(i))))
	}
	return result
}

// Input is a resource consumed by a workflow, task, or trigger.
type Input struct {
	Source               *ResourceReference
	Target               *ResourceReference
	Resource             *ResourceReference
	Data                 *AttachedText
	EnvironmentVars      []EnvironmentVar
	Properties           Properties
}

func (in Input) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if in.Source != nil {
		result = result.Merge(in.Source.Validate(version, ctx.Extend(validate.Struct("Input", "source"))))
	}
	if in.Target != nil {
		result = result.Merge(in.Target.Validate(version, ctx.Extend(validate.Struct("Input", "target"))))
	}
	if in.Resource != nil {
		result = result.Merge(in.Resource.Validate(version, ctx.Extend(validate.Struct("Input", "resource"))))
	}
	if in.Data != nil {
		result = result.Merge(in.Data.Validate(version, ctx.Extend(validate.Struct("Input", "data"))))
	}
	return result
}

// OutputType is the closed vocabulary of output kinds.
type OutputType string

const (
	OutputTypeArtifact    OutputType = "artifact"
	OutputTypeAttestation OutputType = "attestation"
	OutputTypeLog         OutputType = "log"
	OutputTypeEvidence    OutputType = "evidence"
	OutputTypeMetrics     OutputType = "metrics"
	OutputTypeOther       OutputType = "other"
)

func (o OutputType) WellKnown() bool {
	switch o {
	case OutputTypeArtifact, OutputTypeAttestation, OutputTypeLog,
		OutputTypeEvidence, OutputTypeMetrics, OutputTypeOther:
		return true
	}
	return false
}

func (o OutputType) String() string {
	return string(o)
}

func (o OutputType) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !o.WellKnown() {
		return validate.FailUnknown("OutputType", ctx)
	}
	return validate.Pass()
}

// Output is a resource produced by a workflow, task, or trigger.
type Output struct {
	OutputType      *OutputType
	Source          *ResourceReference
	Target          *ResourceReference
	Resource        *ResourceReference
	Data            *AttachedText
	EnvironmentVars []EnvironmentVar
	Properties      Properties
}

func (o Output) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if o.OutputType != nil {
		result = result.Merge(o.OutputType.Validate(version, ctx.Extend(validate.Struct("Output", "output_type"))))
	}
	if o.Source != nil {
		result = result.Merge(o.Source.Validate(version, ctx.Extend(validate.Struct("Output", "source"))))
	}
	if o.Target != nil {
		result = result.Merge(o.Target.Validate(version, ctx.Extend(validate.Struct("Output", "target"))))
	}
	if o.Resource != nil {
		result = result.Merge(o.Resource.Validate(version, ctx.Extend(validate.Struct("Output", "resource"))))
	}
	if o.Data != nil {
		result = result.Merge(o.Data.Validate(version, ctx.Extend(validate.Struct("Output", "data"))))
	}
	return result
}

// VolumeMode is the closed vocabulary of volume modes.
type VolumeMode string

const (
	VolumeModeFilesystem VolumeMode = "filesystem"
	VolumeModeBlock      VolumeMode = "block"
)

func (v VolumeMode) WellKnown() bool {
	return v == VolumeModeFilesystem || v == VolumeModeBlock
}

func (v VolumeMode) String() string {
	return string(v)
}

func (v VolumeMode) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !v.WellKnown() {
		return validate.FailUnknown("VolumeMode", ctx)
	}
	return validate.Pass()
}

// Volume is storage claimed by a workspace.
type Volume struct {
	UID           *string
	Name          *NormalizedString
	Mode          *VolumeMode
	Path          *NormalizedString
	SizeAllocated *NormalizedString
	Persistent    *bool
	Remote        *bool
	Properties    Properties
}

func (v Volume) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if v.Name != nil {
		result = result.Merge(v.Name.Validate(version, ctx.Extend(validate.Struct("Volume", "name"))))
	}
	if v.Mode != nil {
		result = result.Merge(v.Mode.Validate(version, ctx.Extend(validate.Struct("Volume", "mode"))))
	}
	return result
}

// WorkspaceAccessMode is the closed vocabulary of workspace access modes.
type WorkspaceAccessMode string

const (
	AccessModeReadOnly      WorkspaceAccessMode = "read-only"
	AccessModeReadWrite     WorkspaceAccessMode = "read-write"
	AccessModeReadWriteOnce WorkspaceAccessMode = "read-write-once"
	AccessModeWriteOnce     WorkspaceAccessMode = "write-once"
	AccessModeWriteOnly     WorkspaceAccessMode = "write-only"
)

func (w WorkspaceAccessMode) WellKnown() bool {
	switch w {
	case AccessModeReadOnly, AccessModeReadWrite, AccessModeReadWriteOnce,
		AccessModeWriteOnce, AccessModeWriteOnly:
		return true
	}
	return false
}

func (w WorkspaceAccessMode) String() string {
	return string(w)
}

func (w WorkspaceAccessMode) Validate(_ spec.Version, ctx validate.Context) validate.Result {
	if !w.WellKnown() {
		return validate.FailUnknown("WorkspaceAccessMode", ctx)
	}
	return validate.Pass()
}

// Workspace is a filesystem area shared between workflow tasks.
type Workspace struct {
	BomRef             string
	UID                string
	Name               *NormalizedString
	Aliases            []NormalizedString
	Description        *NormalizedString
	ResourceReferences ResourceReferences
	AccessMode         *WorkspaceAccessMode
	MountPath          *NormalizedString
	ManagedDataType    *NormalizedString
	VolumeRequest      *NormalizedString
	Volume             *Volume
	Properties         Properties
}

func (w Workspace) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if w.Name != nil {
		result = result.Merge(w.Name.Validate(version, ctx.Extend(validate.Struct("Workspace", "name"))))
	}
	if w.Description != nil {
		result = result.Merge(w.Description.Validate(version, ctx.Extend(validate.Struct("Workspace", "description"))))
	}
	if len(w.ResourceReferences) > 0 {
		result = result.Merge(w.ResourceReferences.Validate(version, ctx.Extend(validate.Struct("Workspace", "resource_references"))))
	}
	if w.AccessMode != nil {
		result = result.Merge(w.AccessMode.Validate(version, ctx.Extend(validate.Struct("Workspace", "access_mode"))))
	}
	if w.Volume != nil {
		result = result.Merge(w.Volume.Validate(version, ctx.Extend(validate.Struct("Workspace", "volume"))))
	}
	return result
}

// Task is one unit of work in a workflow.
type Task struct {
	BomRef             string
	UID                string
	Name               *NormalizedString
	Description        *NormalizedString
	ResourceReferences ResourceReferences
	TaskTypes          []TaskType
	Trigger            *Trigger
	Steps              []Step
	Inputs             []Input
	Outputs            []Output
	TimeStart          *DateTime
	TimeEnd            *DateTime
	Workspaces         []Workspace
	RuntimeTopology    Dependencies
	Properties         Properties
}

func (t Task) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if t.Name != nil {
		result = result.Merge(t.Name.Validate(version, ctx.Extend(validate.Struct("Task", "name"))))
	}
	if t.Description != nil {
		result = result.Merge(t.Description.Validate(version, ctx.Extend(validate.Struct("Task", "description"))))
	}
	if len(t.ResourceReferences) > 0 {
		result = result.Merge(t.ResourceReferences.Validate(version, ctx.Extend(validate.Struct("Task", "resource_references"))))
	}
	for i, taskType := range t.TaskTypes {
		result = result.Merge(taskType.Validate(version, ctx.Extend(validate.Struct("Task", "task_types"), validate.Array(i))))
	}
	if t.Trigger != nil {
		result = result.Merge(t.Trigger.Validate(version, ctx.Extend(validate.Struct("Task", "trigger"))))
	}
	for i, step := range t.Steps {
		result = result.Merge(step.Validate(version, ctx.Extend(validate.Struct("Task", "steps"), validate.Array(i))))
	}
	for i, input := range t.Inputs {
		result = result.Merge(input.Validate(version, ctx.Extend(validate.Struct("Task", "inputs"), validate.Array(i))))
	}
	for i, output := range t.Outputs {
		result = result.Merge(output.Validate(version, ctx.Extend(validate.Struct("Task", "outputs"), validate.Array(i))))
	}
	if t.TimeStart != nil {
		result = result.Merge(t.TimeStart.Validate(version, ctx.Extend(validate.Struct("Task", "time_start"))))
	}
	if t.TimeEnd != nil {
		result = result.Merge(t.TimeEnd.Validate(version, ctx.Extend(validate.Struct("Task", "time_end"))))
	}
	for i, workspace := range t.Workspaces {
		result = result.Merge(workspace.Validate(version, ctx.Extend(validate.Struct("Task", "workspaces"), validate.Array(i))))
	}
	return result
}

// Workflow is a pipeline description (build/test/deploy) introduced in 1.5.
type Workflow struct {
	BomRef             string
	UID                string
	Name               *NormalizedString
	Description        *NormalizedString
	ResourceReferences ResourceReferences
	Tasks              []Task
	TaskDependencies   Dependencies
	TaskTypes          []TaskType
	Trigger            *Trigger
	Steps              []Step
	Inputs             []Input
	Outputs            []Output
	TimeStart          *DateTime
	TimeEnd            *DateTime
	Workspaces         []Workspace
	RuntimeTopology    Dependencies
	Properties         Properties
}

func (w Workflow) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if w.Name != nil {
		result = result.Merge(w.Name.Validate(version, ctx.Extend(validate.Struct("Workflow", "name"))))
	}
	if w.Description != nil {
		result = result.Merge(w.Description.Validate(version, ctx.Extend(validate.Struct("Workflow", "description"))))
	}
	if len(w.ResourceReferences) > 0 {
		result = result.Merge(w.ResourceReferences.Validate(version, ctx.Extend(validate.Struct("Workflow", "resource_references"))))
	}
	for i, task := range w.Tasks {
		result = result.Merge(task.Validate(version, ctx.Extend(validate.Struct("Workflow", "tasks"), validate.Array(i))))
	}
	for i, taskType := range w.TaskTypes {
		result = result.Merge(taskType.Validate(version, ctx.Extend(validate.Struct("Workflow", "task_types"), validate.Array(i))))
	}
	if w.Trigger != nil {
		result = result.Merge(w.Trigger.Validate(version, ctx.Extend(validate.Struct("Workflow", "trigger"))))
	}
	for i, step := range w.Steps {
		result = result.Merge(step.Validate(version, ctx.Extend(validate.Struct("Workflow", "steps"), validate.Array(i))))
	}
	for i, input := range w.Inputs {
		result = result.Merge(input.Validate(version, ctx.Extend(validate.Struct("Workflow", "inputs"), validate.Array(i))))
	}
	for i, output := range w.Outputs {
		result = result.Merge(output.Validate(version, ctx.Extend(validate.Struct("Workflow", "outputs"), validate.Array(i))))
	}
	if w.TimeStart != nil {
		result = result.Merge(w.TimeStart.Validate(version, ctx.Extend(validate.Struct("Workflow", "time_start"))))
	}
	if w.TimeEnd != nil {
		result = result.Merge(w.TimeEnd.Validate(version, ctx.Extend(validate.Struct("Workflow", "time_end"))))
	}
	for i, workspace := range w.Workspaces {
		result = result.Merge(workspace.Validate(version, ctx.Extend(validate.Struct("Workflow", "workspaces"), validate.Array(i))))
	}
	return result
}

// Formula describes how a component or service was manufactured or
// deployed. Only written at spec version 1.5 and later.
type Formula struct {
	BomRef     *string
	Components *Components
	Services   *Services
	Workflows  []Workflow
	Properties Properties
}

func (f Formula) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	if f.Components != nil {
		result = result.Merge(f.Components.Validate(version, ctx.Extend(validate.Struct("Formula", "components"))))
	}
	if f.Services != nil {
		result = result.Merge(f.Services.Validate(version, ctx.Extend(validate.Struct("Formula", "services"))))
	}
	for i, workflow := range f.Workflows {
		result = result.Merge(workflow.Validate(version, ctx.Extend(validate.Struct("Formula", "workflows"), validate.Array(i))))
	}
	if len(f.Properties) > 0 {
		result = result.Merge(f.Properties.Validate(version, ctx.Extend(validate.Struct("Formula", "properties"))))
	}
	return result
}

// Formulation is the list of formulas carried by a BOM.
type Formulation []Formula

func (f Formulation) Validate(version spec.Version, ctx validate.Context) validate.Result {
	result := validate.Pass()
	for i, formula := range f {
		result = result.Merge(formula.Validate(version, ctx.Extend(validate.Struct("Formulation", "inner"), validate.Array(i))))
	}
	return result
}
