package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// ResourceInspector lists every resource of a store and lets numeric,
// boolean and string fields be edited in place.
type ResourceInspector struct {
	resources *ecs.Resources
}

func NewResourceInspector(resources *ecs.Resources) *ResourceInspector {
	return &ResourceInspector{resources: resources}
}

func (ri *ResourceInspector) Render() {
	if !imgui.BeginV("Resource Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	types := ri.resources.Types()
	if len(types) == 0 {
		imgui.Text("No resources")
		imgui.End()
		return
	}

	for _, typ := range types {
		res := ri.resources.Get(typ)
		if res == nil {
			continue
		}
		if imgui.TreeNodeStr(typ.String()) {
			ri.renderStruct(reflect.ValueOf(res).Elem())
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ri *ResourceInspector) renderStruct(val reflect.Value) {
	if val.Kind() != reflect.Struct {
		imgui.Text(summarize(val))
		return
	}
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer && !fieldVal.IsNil() {
			fieldVal = fieldVal.Elem()
		}
		ri.renderField(field.Name, fieldVal, field)
	}
}

func (ri *ResourceInspector) renderField(name string, val reflect.Value, field FieldInfo) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.IsPointer && val.Kind() == reflect.Ptr && val.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", name))
		return
	}

	if _, ok := val.Interface().(fmt.Stringer); ok && !field.IsStruct {
		imgui.Text(fmt.Sprintf("%s: %s", name, summarize(val)))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ri.renderStruct(val)
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, summarize(val)))
	}
}
