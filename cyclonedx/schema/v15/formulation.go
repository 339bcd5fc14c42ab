package v15

import "github.com/gobom/cyclonedx/cyclonedx/model"

type resourceReference struct {
	Ref               string             `json:"ref,omitempty" xml:"ref,omitempty"`
	ExternalReference *externalReference `json:"externalReference,omitempty" xml:"externalReference,omitempty"`
}

func resourceReferenceToWire(r model.ResourceReference) resourceReference {
	wire := resourceReference{Ref: stringValue(r.Ref)}
	if r.ExternalReference != nil {
		refs := externalReferencesToWire(model.ExternalReferences{*r.ExternalReference})
		wire.ExternalReference = &(*refs)[0]
	}
	return wire
}

func resourceReferenceToModel(r resourceReference) model.ResourceReference {
	out := model.ResourceReference{Ref: optString(r.Ref)}
	if r.ExternalReference != nil {
		refs := externalReferencesToModel(&[]externalReference{*r.ExternalReference})
		out.ExternalReference = &refs[0]
	}
	return out
}

func optResourceReferenceToWire(r *model.ResourceReference) *resourceReference {
	if r == nil {
		return nil
	}
	wire := resourceReferenceToWire(*r)
	return &wire
}

func optResourceReferenceToModel(r *resourceReference) *model.ResourceReference {
	if r == nil {
		return nil
	}
	out := resourceReferenceToModel(*r)
	return &out
}

func resourceReferencesToWire(refs model.ResourceReferences) *[]resourceReference {
	if len(refs) == 0 {
		return nil
	}
	wire := make([]resourceReference, 0, len(refs))
	for _, r := range refs {
		wire = append(wire, resourceReferenceToWire(r))
	}
	return &wire
}

func resourceReferencesToModel(refs *[]resourceReference) model.ResourceReferences {
	if refs == nil {
		return nil
	}
	out := make(model.ResourceReferences, 0, len(*refs))
	for _, r := range *refs {
		out = append(out, resourceReferenceToModel(r))
	}
	return out
}

type environmentVar struct {
	Name  string `json:"name" xml:"name,attr"`
	Value string `json:"value" xml:",chardata"`
}

func environmentVarsToWire(vars []model.EnvironmentVar) *[]environmentVar {
	if len(vars) == 0 {
		return nil
	}
	wire := make([]environmentVar, 0, len(vars))
	for _, v := range vars {
		wire = append(wire, environmentVar{Name: v.Name, Value: v.Value.String()})
	}
	return &wire
}

func environmentVarsToModel(vars *[]environmentVar) []model.EnvironmentVar {
	if vars == nil {
		return nil
	}
	out := make([]model.EnvironmentVar, 0, len(*vars))
	for _, v := range *vars {
		out = append(out, model.EnvironmentVar{Name: v.Name, Value: model.NormalizedStringUnchecked(v.Value)})
	}
	return out
}

type command struct {
	Executed   string      `json:"executed,omitempty" xml:"executed,omitempty"`
	Properties *[]property `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

type step struct {
	Name        string      `json:"name,omitempty" xml:"name,omitempty"`
	Description string      `json:"description,omitempty" xml:"description,omitempty"`
	Commands    *[]command  `json:"commands,omitempty" xml:"commands>command,omitempty"`
	Properties  *[]property `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func stepsToWire(steps []model.Step) *[]step {
	if len(steps) == 0 {
		return nil
	}
	wire := make([]step, 0, len(steps))
	for _, s := range steps {
		entry := step{
			Name:        normalizedValue(s.Name),
			Description: normalizedValue(s.Description),
			Properties:  propertiesToWire(s.Properties),
		}
		if len(s.Commands) > 0 {
			commands := make([]command, 0, len(s.Commands))
			for _, c := range s.Commands {
				commands = append(commands, command{
					Executed:   normalizedValue(c.Executed),
					Properties: propertiesToWire(c.Properties),
				})
			}
			entry.Commands = &commands
		}
		wire = append(wire, entry)
	}
	return &wire
}

func stepsToModel(steps *[]step) []model.Step {
	if steps == nil {
		return nil
	}
	out := make([]model.Step, 0, len(*steps))
	for _, s := range *steps {
		entry := model.Step{
			Name:        optNormalized(s.Name),
			Description: optNormalized(s.Description),
			Properties:  propertiesToModel(s.Properties),
		}
		if s.Commands != nil {
			for _, c := range *s.Commands {
				entry.Commands = append(entry.Commands, model.Command{
					Executed:   optNormalized(c.Executed),
					Properties: propertiesToModel(c.Properties),
				})
			}
		}
		out = append(out, entry)
	}
	return out
}

type workflowInput struct {
	Source          *resourceReference `json:"source,omitempty" xml:"source,omitempty"`
	Target          *resourceReference `json:"target,omitempty" xml:"target,omitempty"`
	Resource        *resourceReference `json:"resource,omitempty" xml:"resource,omitempty"`
	Data            *attachedText      `json:"data,omitempty" xml:"data,omitempty"`
	EnvironmentVars *[]environmentVar  `json:"environmentVars,omitempty" xml:"environmentVars>environmentVar,omitempty"`
	Properties      *[]property        `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func inputsToWire(inputs []model.Input) *[]workflowInput {
	if len(inputs) == 0 {
		return nil
	}
	wire := make([]workflowInput, 0, len(inputs))
	for _, in := range inputs {
		wire = append(wire, workflowInput{
			Source:          optResourceReferenceToWire(in.Source),
			Target:          optResourceReferenceToWire(in.Target),
			Resource:        optResourceReferenceToWire(in.Resource),
			Data:            attachedTextToWire(in.Data),
			EnvironmentVars: environmentVarsToWire(in.EnvironmentVars),
			Properties:      propertiesToWire(in.Properties),
		})
	}
	return &wire
}

func inputsToModel(inputs *[]workflowInput) []model.Input {
	if inputs == nil {
		return nil
	}
	out := make([]model.Input, 0, len(*inputs))
	for _, in := range *inputs {
		out = append(out, model.Input{
			Source:          optResourceReferenceToModel(in.Source),
			Target:          optResourceReferenceToModel(in.Target),
			Resource:        optResourceReferenceToModel(in.Resource),
			Data:            attachedTextToModel(in.Data),
			EnvironmentVars: environmentVarsToModel(in.EnvironmentVars),
			Properties:      propertiesToModel(in.Properties),
		})
	}
	return out
}

type workflowOutput struct {
	Type            string             `json:"type,omitempty" xml:"type,omitempty"`
	Source          *resourceReference `json:"source,omitempty" xml:"source,omitempty"`
	Target          *resourceReference `json:"target,omitempty" xml:"target,omitempty"`
	Resource        *resourceReference `json:"resource,omitempty" xml:"resource,omitempty"`
	Data            *attachedText      `json:"data,omitempty" xml:"data,omitempty"`
	EnvironmentVars *[]environmentVar  `json:"environmentVars,omitempty" xml:"environmentVars>environmentVar,omitempty"`
	Properties      *[]property        `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func outputsToWire(outputs []model.Output) *[]workflowOutput {
	if len(outputs) == 0 {
		return nil
	}
	wire := make([]workflowOutput, 0, len(outputs))
	for _, out := range outputs {
		entry := workflowOutput{
			Source:          optResourceReferenceToWire(out.Source),
			Target:          optResourceReferenceToWire(out.Target),
			Resource:        optResourceReferenceToWire(out.Resource),
			Data:            attachedTextToWire(out.Data),
			EnvironmentVars: environmentVarsToWire(out.EnvironmentVars),
			Properties:      propertiesToWire(out.Properties),
		}
		if out.OutputType != nil {
			entry.Type = out.OutputType.String()
		}
		wire = append(wire, entry)
	}
	return &wire
}

func outputsToModel(outputs *[]workflowOutput) []model.Output {
	if outputs == nil {
		return nil
	}
	out := make([]model.Output, 0, len(*outputs))
	for _, o := range *outputs {
		entry := model.Output{
			Source:          optResourceReferenceToModel(o.Source),
			Target:          optResourceReferenceToModel(o.Target),
			Resource:        optResourceReferenceToModel(o.Resource),
			Data:            attachedTextToModel(o.Data),
			EnvironmentVars: environmentVarsToModel(o.EnvironmentVars),
			Properties:      propertiesToModel(o.Properties),
		}
		if o.Type != "" {
			outputType := model.OutputType(o.Type)
			entry.OutputType = &outputType
		}
		out = append(out, entry)
	}
	return out
}

type workflowTrigger struct {
	BomRef             string               `json:"bom-ref" xml:"bom-ref,attr"`
	UID                string               `json:"uid" xml:"uid"`
	Name               string               `json:"name,omitempty" xml:"name,omitempty"`
	Description        string               `json:"description,omitempty" xml:"description,omitempty"`
	ResourceReferences *[]resourceReference `json:"resourceReferences,omitempty" xml:"resourceReferences>resourceReference,omitempty"`
	Type               string               `json:"type" xml:"type"`
	TimeActivated      string               `json:"timeActivated,omitempty" xml:"timeActivated,omitempty"`
	Inputs             *[]workflowInput     `json:"inputs,omitempty" xml:"inputs>input,omitempty"`
	Outputs            *[]workflowOutput    `json:"outputs,omitempty" xml:"outputs>output,omitempty"`
	Properties         *[]property          `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func triggerToWire(t *model.Trigger) *workflowTrigger {
	if t == nil {
		return nil
	}
	return &workflowTrigger{
		BomRef:             t.BomRef,
		UID:                t.UID,
		Name:               normalizedValue(t.Name),
		Description:        normalizedValue(t.Description),
		ResourceReferences: resourceReferencesToWire(t.ResourceReferences),
		Type:               t.TriggerType.String(),
		TimeActivated:      dateTimeValue(t.TimeActivated),
		Inputs:             inputsToWire(t.Inputs),
		Outputs:            outputsToWire(t.Outputs),
		Properties:         propertiesToWire(t.Properties),
	}
}

func triggerToModel(t *workflowTrigger) *model.Trigger {
	if t == nil {
		return nil
	}
	return &model.Trigger{
		BomRef:             t.BomRef,
		UID:                t.UID,
		Name:               optNormalized(t.Name),
		Description:        optNormalized(t.Description),
		ResourceReferences: resourceReferencesToModel(t.ResourceReferences),
		TriggerType:        model.TriggerType(t.Type),
		TimeActivated:      optDateTime(t.TimeActivated),
		Inputs:             inputsToModel(t.Inputs),
		Outputs:            outputsToModel(t.Outputs),
		Properties:         propertiesToModel(t.Properties),
	}
}

type volume struct {
	UID           string      `json:"uid,omitempty" xml:"uid,omitempty"`
	Name          string      `json:"name,omitempty" xml:"name,omitempty"`
	Mode          string      `json:"mode,omitempty" xml:"mode,omitempty"`
	Path          string      `json:"path,omitempty" xml:"path,omitempty"`
	SizeAllocated string      `json:"sizeAllocated,omitempty" xml:"sizeAllocated,omitempty"`
	Persistent    *bool       `json:"persistent,omitempty" xml:"persistent,omitempty"`
	Remote        *bool       `json:"remote,omitempty" xml:"remote,omitempty"`
	Properties    *[]property `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

type workspace struct {
	BomRef             string               `json:"bom-ref" xml:"bom-ref,attr"`
	UID                string               `json:"uid" xml:"uid"`
	Name               string               `json:"name,omitempty" xml:"name,omitempty"`
	Aliases            *[]string            `json:"aliases,omitempty" xml:"aliases>alias,omitempty"`
	Description        string               `json:"description,omitempty" xml:"description,omitempty"`
	ResourceReferences *[]resourceReference `json:"resourceReferences,omitempty" xml:"resourceReferences>resourceReference,omitempty"`
	AccessMode         string               `json:"accessMode,omitempty" xml:"accessMode,omitempty"`
	MountPath          string               `json:"mountPath,omitempty" xml:"mountPath,omitempty"`
	ManagedDataType    string               `json:"managedDataType,omitempty" xml:"managedDataType,omitempty"`
	VolumeRequest      string               `json:"volumeRequest,omitempty" xml:"volumeRequest,omitempty"`
	Volume             *volume              `json:"volume,omitempty" xml:"volume,omitempty"`
	Properties         *[]property          `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func workspacesToWire(workspaces []model.Workspace) *[]workspace {
	if len(workspaces) == 0 {
		return nil
	}
	wire := make([]workspace, 0, len(workspaces))
	for _, w := range workspaces {
		entry := workspace{
			BomRef:             w.BomRef,
			UID:                w.UID,
			Name:               normalizedValue(w.Name),
			Description:        normalizedValue(w.Description),
			ResourceReferences: resourceReferencesToWire(w.ResourceReferences),
			MountPath:          normalizedValue(w.MountPath),
			ManagedDataType:    normalizedValue(w.ManagedDataType),
			VolumeRequest:      normalizedValue(w.VolumeRequest),
			Properties:         propertiesToWire(w.Properties),
		}
		if len(w.Aliases) > 0 {
			aliases := make([]string, 0, len(w.Aliases))
			for _, a := range w.Aliases {
				aliases = append(aliases, a.String())
			}
			entry.Aliases = &aliases
		}
		if w.AccessMode != nil {
			entry.AccessMode = w.AccessMode.String()
		}
		if w.Volume != nil {
			v := volume{
				UID:           stringValue(w.Volume.UID),
				Name:          normalizedValue(w.Volume.Name),
				Path:          normalizedValue(w.Volume.Path),
				SizeAllocated: normalizedValue(w.Volume.SizeAllocated),
				Persistent:    w.Volume.Persistent,
				Remote:        w.Volume.Remote,
				Properties:    propertiesToWire(w.Volume.Properties),
			}
			if w.Volume.Mode != nil {
				v.Mode = w.Volume.Mode.String()
			}
			entry.Volume = &v
		}
		wire = append(wire, entry)
	}
	return &wire
}

func workspacesToModel(workspaces *[]workspace) []model.Workspace {
	if workspaces == nil {
		return nil
	}
	out := make([]model.Workspace, 0, len(*workspaces))
	for _, w := range *workspaces {
		entry := model.Workspace{
			BomRef:             w.BomRef,
			UID:                w.UID,
			Name:               optNormalized(w.Name),
			Description:        optNormalized(w.Description),
			ResourceReferences: resourceReferencesToModel(w.ResourceReferences),
			MountPath:          optNormalized(w.MountPath),
			ManagedDataType:    optNormalized(w.ManagedDataType),
			VolumeRequest:      optNormalized(w.VolumeRequest),
			Properties:         propertiesToModel(w.Properties),
		}
		if w.Aliases != nil {
			for _, a := range *w.Aliases {
				entry.Aliases = append(entry.Aliases, model.NormalizedStringUnchecked(a))
			}
		}
		if w.AccessMode != "" {
			mode := model.WorkspaceAccessMode(w.AccessMode)
			entry.AccessMode = &mode
		}
		if w.Volume != nil {
			v := model.Volume{
				UID:           optString(w.Volume.UID),
				Name:          optNormalized(w.Volume.Name),
				Path:          optNormalized(w.Volume.Path),
				SizeAllocated: optNormalized(w.Volume.SizeAllocated),
				Persistent:    w.Volume.Persistent,
				Remote:        w.Volume.Remote,
				Properties:    propertiesToModel(w.Volume.Properties),
			}
			if w.Volume.Mode != "" {
				mode := model.VolumeMode(w.Volume.Mode)
				v.Mode = &mode
			}
			entry.Volume = &v
		}
		out = append(out, entry)
	}
	return out
}

type task struct {
	BomRef             string               `json:"bom-ref" xml:"bom-ref,attr"`
	UID                string               `json:"uid" xml:"uid"`
	Name               string               `json:"name,omitempty" xml:"name,omitempty"`
	Description        string               `json:"description,omitempty" xml:"description,omitempty"`
	ResourceReferences *[]resourceReference `json:"resourceReferences,omitempty" xml:"resourceReferences>resourceReference,omitempty"`
	TaskTypes          *[]string            `json:"taskTypes,omitempty" xml:"taskTypes>taskType,omitempty"`
	Trigger            *workflowTrigger     `json:"trigger,omitempty" xml:"trigger,omitempty"`
	Steps              *[]step              `json:"steps,omitempty" xml:"steps>step,omitempty"`
	Inputs             *[]workflowInput     `json:"inputs,omitempty" xml:"inputs>input,omitempty"`
	Outputs            *[]workflowOutput    `json:"outputs,omitempty" xml:"outputs>output,omitempty"`
	TimeStart          string               `json:"timeStart,omitempty" xml:"timeStart,omitempty"`
	TimeEnd            string               `json:"timeEnd,omitempty" xml:"timeEnd,omitempty"`
	Workspaces         *[]workspace         `json:"workspaces,omitempty" xml:"workspaces>workspace,omitempty"`
	RuntimeTopology    *dependencies        `json:"runtimeTopology,omitempty" xml:"runtimeTopology,omitempty"`
	Properties         *[]property          `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func taskTypesToWire(types []model.TaskType) *[]string {
	if len(types) == 0 {
		return nil
	}
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}
	return &out
}

func taskTypesToModel(types *[]string) []model.TaskType {
	if types == nil {
		return nil
	}
	out := make([]model.TaskType, 0, len(*types))
	for _, t := range *types {
		out = append(out, model.TaskType(t))
	}
	return out
}

func tasksToWire(tasks []model.Task) *[]task {
	if len(tasks) == 0 {
		return nil
	}
	wire := make([]task, 0, len(tasks))
	for _, t := range tasks {
		wire = append(wire, task{
			BomRef:             t.BomRef,
			UID:                t.UID,
			Name:               normalizedValue(t.Name),
			Description:        normalizedValue(t.Description),
			ResourceReferences: resourceReferencesToWire(t.ResourceReferences),
			TaskTypes:          taskTypesToWire(t.TaskTypes),
			Trigger:            triggerToWire(t.Trigger),
			Steps:              stepsToWire(t.Steps),
			Inputs:             inputsToWire(t.Inputs),
			Outputs:            outputsToWire(t.Outputs),
			TimeStart:          dateTimeValue(t.TimeStart),
			TimeEnd:            dateTimeValue(t.TimeEnd),
			Workspaces:         workspacesToWire(t.Workspaces),
			RuntimeTopology:    dependenciesToWire(t.RuntimeTopology),
			Properties:         propertiesToWire(t.Properties),
		})
	}
	return &wire
}

func tasksToModel(tasks *[]task) []model.Task {
	if tasks == nil {
		return nil
	}
	out := make([]model.Task, 0, len(*tasks))
	for _, t := range *tasks {
		out = append(out, model.Task{
			BomRef:             t.BomRef,
			UID:                t.UID,
			Name:               optNormalized(t.Name),
			Description:        optNormalized(t.Description),
			ResourceReferences: resourceReferencesToModel(t.ResourceReferences),
			TaskTypes:          taskTypesToModel(t.TaskTypes),
			Trigger:            triggerToModel(t.Trigger),
			Steps:              stepsToModel(t.Steps),
			Inputs:             inputsToModel(t.Inputs),
			Outputs:            outputsToModel(t.Outputs),
			TimeStart:          optDateTime(t.TimeStart),
			TimeEnd:            optDateTime(t.TimeEnd),
			Workspaces:         workspacesToModel(t.Workspaces),
			RuntimeTopology:    dependenciesToModel(t.RuntimeTopology),
			Properties:         propertiesToModel(t.Properties),
		})
	}
	return out
}

type workflow struct {
	BomRef             string               `json:"bom-ref" xml:"bom-ref,attr"`
	UID                string               `json:"uid" xml:"uid"`
	Name               string               `json:"name,omitempty" xml:"name,omitempty"`
	Description        string               `json:"description,omitempty" xml:"description,omitempty"`
	ResourceReferences *[]resourceReference `json:"resourceReferences,omitempty" xml:"resourceReferences>resourceReference,omitempty"`
	Tasks              *[]task              `json:"tasks,omitempty" xml:"tasks>task,omitempty"`
	TaskDependencies   *dependencies        `json:"taskDependencies,omitempty" xml:"taskDependencies,omitempty"`
	TaskTypes          *[]string            `json:"taskTypes,omitempty" xml:"taskTypes>taskType,omitempty"`
	Trigger            *workflowTrigger     `json:"trigger,omitempty" xml:"trigger,omitempty"`
	Steps              *[]step              `json:"steps,omitempty" xml:"steps>step,omitempty"`
	Inputs             *[]workflowInput     `json:"inputs,omitempty" xml:"inputs>input,omitempty"`
	Outputs            *[]workflowOutput    `json:"outputs,omitempty" xml:"outputs>output,omitempty"`
	TimeStart          string               `json:"timeStart,omitempty" xml:"timeStart,omitempty"`
	TimeEnd            string               `json:"timeEnd,omitempty" xml:"timeEnd,omitempty"`
	Workspaces         *[]workspace         `json:"workspaces,omitempty" xml:"workspaces>workspace,omitempty"`
	RuntimeTopology    *dependencies        `json:"runtimeTopology,omitempty" xml:"runtimeTopology,omitempty"`
	Properties         *[]property          `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

type formula struct {
	BomRef     string       `json:"bom-ref,omitempty" xml:"bom-ref,attr,omitempty"`
	Components *[]component `json:"components,omitempty" xml:"components>component,omitempty"`
	Services   *[]service   `json:"services,omitempty" xml:"services>service,omitempty"`
	Workflows  *[]workflow  `json:"workflows,omitempty" xml:"workflows>workflow,omitempty"`
	Properties *[]property  `json:"properties,omitempty" xml:"properties>property,omitempty"`
}

func formulationToWire(formulation model.Formulation) *[]formula {
	if len(formulation) == 0 {
		return nil
	}
	wire := make([]formula, 0, len(formulation))
	for _, f := range formulation {
		entry := formula{
			BomRef:     stringValue(f.BomRef),
			Components: componentsToWire(f.Components),
			Services:   servicesToWire(f.Services),
			Properties: propertiesToWire(f.Properties),
		}
		if len(f.Workflows) > 0 {
			workflows := make([]workflow, 0, len(f.Workflows))
			for _, w := range f.Workflows {
				workflows = append(workflows, workflow{
					BomRef:             w.BomRef,
					UID:                w.UID,
					Name:               normalizedValue(w.Name),
					Description:        normalizedValue(w.Description),
					ResourceReferences: resourceReferencesToWire(w.ResourceReferences),
					Tasks:              tasksToWire(w.Tasks),
					TaskDependencies:   dependenciesToWire(w.TaskDependencies),
					TaskTypes:          taskTypesToWire(w.TaskTypes),
					Trigger:            triggerToWire(w.Trigger),
					Steps:              stepsToWire(w.Steps),
					Inputs:             inputsToWire(w.Inputs),
					Outputs:            outputsToWire(w.Outputs),
					TimeStart:          dateTimeValue(w.TimeStart),
					TimeEnd:            dateTimeValue(w.TimeEnd),
					Workspaces:         workspacesToWire(w.Workspaces),
					RuntimeTopology:    dependenciesToWire(w.RuntimeTopology),
					Properties:         propertiesToWire(w.Properties),
				})
			}
			entry.Workflows = &workflows
		}
		wire = append(wire, entry)
	}
	return &wire
}

func formulationToModel(formulation *[]formula) model.Formulation {
	if formulation == nil {
		return nil
	}
	out := make(model.Formulation, 0, len(*formulation))
	for _, f := range *formulation {
		entry := model.Formula{
			BomRef:     optString(f.BomRef),
			Components: componentsToModel(f.Components),
			Services:   servicesToModel(f.Services),
			Properties: propertiesToModel(f.Properties),
		}
		if f.Workflows != nil {
			for _, w := range *f.Workflows {
				entry.Workflows = append(entry.Workflows, model.Workflow{
					BomRef:             w.BomRef,
					UID:                w.UID,
					Name:               optNormalized(w.Name),
					Description:        optNormalized(w.Description),
					ResourceReferences: resourceReferencesToModel(w.ResourceReferences),
					Tasks:              tasksToModel(w.Tasks),
					TaskDependencies:   dependenciesToModel(w.TaskDependencies),
					TaskTypes:          taskTypesToModel(w.TaskTypes),
					Trigger:            triggerToModel(w.Trigger),
					Steps:              stepsToModel(w.Steps),
					Inputs:             inputsToModel(w.Inputs),
					Outputs:            outputsToModel(w.Outputs),
					TimeStart:          optDateTime(w.TimeStart),
					TimeEnd:            optDateTime(w.TimeEnd),
					Workspaces:         workspacesToModel(w.Workspaces),
					RuntimeTopology:    dependenciesToModel(w.RuntimeTopology),
					Properties:         propertiesToModel(w.Properties),
				})
			}
		}
		out = append(out, entry)
	}
	return out
}
