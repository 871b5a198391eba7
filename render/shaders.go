package render

// GLSL sources for the scene shader. The uniform names are the wire
// format between the scene package and the GPU; they must stay in
// sync with sceneUniformNames below.

const sceneVertexShader = `
#version 410 core

layout(location = 0) in vec3 vertexPosition;
layout(location = 1) in vec3 vertexNormal;
layout(location = 2) in vec2 vertexUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragPos;
out vec3 normal;
out vec2 uv;

void main() {
	fragPos = vec3(model * vec4(vertexPosition, 1.0));
	normal = mat3(transpose(inverse(model))) * vertexNormal;
	uv = vertexUV * UVscale;

	gl_Position = projection * view * vec4(fragPos, 1.0);
}`

const sceneFragmentShader = `
#version 410 core

in vec3 fragPos;
in vec3 normal;
in vec2 uv;

out vec4 fragColor;

uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec3 viewPosition;

struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};
uniform Material material;

struct DirLight {
	vec3 direction;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
};
uniform DirLight dirLight;

struct SpotLight {
	vec3 position;
	vec3 direction;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;

	float constant;
	float linear;
	float quadratic;

	float cutOff;
	float outerCutOff;
};
uniform SpotLight spotLight;

vec3 calcDirLight(DirLight light, vec3 norm, vec3 viewDir) {
	vec3 lightDir = normalize(-light.direction);

	float diff = max(dot(norm, lightDir), 0.0);

	vec3 reflectDir = reflect(-lightDir, norm);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));

	vec3 ambient = light.ambient * material.ambientStrength * material.ambientColor;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor;
	vec3 specular = light.specular * spec * material.specularColor;

	return ambient + diffuse + specular;
}

vec3 calcSpotLight(SpotLight light, vec3 norm, vec3 pos, vec3 viewDir) {
	vec3 lightDir = normalize(light.position - pos);

	float diff = max(dot(norm, lightDir), 0.0);

	vec3 reflectDir = reflect(-lightDir, norm);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), max(material.shininess, 1.0));

	float distance = length(light.position - pos);
	float attenuation = 1.0 / (light.constant + light.linear * distance +
		light.quadratic * (distance * distance));

	// soft cone edge
	float theta = dot(lightDir, normalize(-light.direction));
	float epsilon = light.cutOff - light.outerCutOff;
	float intensity = clamp((theta - light.outerCutOff) / epsilon, 0.0, 1.0);

	vec3 ambient = light.ambient * material.ambientStrength * material.ambientColor;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor;
	vec3 specular = light.specular * spec * material.specularColor;

	return (ambient + (diffuse + specular) * intensity) * attenuation;
}

void main() {
	vec4 baseColor = bUseTexture ? texture(objectTexture, uv) : objectColor;

	if (!bUseLighting) {
		fragColor = baseColor;
		return;
	}

	vec3 norm = normalize(normal);
	vec3 viewDir = normalize(viewPosition - fragPos);

	vec3 lighting = calcDirLight(dirLight, norm, viewDir) +
		calcSpotLight(spotLight, norm, fragPos, viewDir);

	fragColor = vec4(lighting, 1.0) * baseColor;
}`

// sceneUniformNames lists every uniform the scene shader declares.
// Locations are resolved once at program link time.
func sceneUniformNames() []string {
	return []string{
		"model",
		"view",
		"projection",
		"viewPosition",

		"objectColor",
		"objectTexture",
		"bUseTexture",
		"bUseLighting",
		"UVscale",

		"material.ambientColor",
		"material.ambientStrength",
		"material.diffuseColor",
		"material.specularColor",
		"material.shininess",

		"dirLight.direction",
		"dirLight.ambient",
		"dirLight.diffuse",
		"dirLight.specular",

		"spotLight.position",
		"spotLight.direction",
		"spotLight.ambient",
		"spotLight.diffuse",
		"spotLight.specular",
		"spotLight.constant",
		"spotLight.linear",
		"spotLight.quadratic",
		"spotLight.cutOff",
		"spotLight.outerCutOff",
	}
}
